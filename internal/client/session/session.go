// FILE: internal/client/session/session.go
package session

import "checkora/internal/client/api"

// Session holds the interactive client state between commands
type Session struct {
	APIBaseURL       string
	CurrentGame      string
	CurrentUser      string
	AuthToken        string
	Username         string
	LastMoveCount    int
	Client           *api.Client
	Verbose          bool
	CurrentGameState *api.GameResponse
}

func (s *Session) GetAPIBaseURL() string     { return s.APIBaseURL }
func (s *Session) SetAPIBaseURL(url string)  { s.APIBaseURL = url }
func (s *Session) GetCurrentGame() string    { return s.CurrentGame }
func (s *Session) SetCurrentGame(id string)  { s.CurrentGame = id }
func (s *Session) GetCurrentUser() string    { return s.CurrentUser }
func (s *Session) SetCurrentUser(id string)  { s.CurrentUser = id }
func (s *Session) GetAuthToken() string      { return s.AuthToken }
func (s *Session) SetAuthToken(token string) { s.AuthToken = token }
func (s *Session) GetUsername() string       { return s.Username }
func (s *Session) SetUsername(name string)   { s.Username = name }
func (s *Session) GetLastMoveCount() int     { return s.LastMoveCount }
func (s *Session) SetLastMoveCount(n int)    { s.LastMoveCount = n }
func (s *Session) GetClient() interface{}    { return s.Client }
func (s *Session) IsVerbose() bool           { return s.Verbose }

func (s *Session) SetGameState(v interface{}) {
	if g, ok := v.(*api.GameResponse); ok {
		s.CurrentGameState = g
	}
}
