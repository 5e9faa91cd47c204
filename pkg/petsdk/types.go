package petsdk

import "time"

const (
	CodeFailure = 0
	CodeSuccess = 1
)

// Envelope is the body of every JSON response.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ============================================================================
// Request Types
// ============================================================================

// BoardSaveRequest is the body of a notice, qna or boast create or update.
type BoardSaveRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CommentSaveRequest struct {
	Content string `json:"content"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// JoinRequest registers a new user. AuthKey is the key mailed by
// IssueAuthKey.
type JoinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Birth    string `json:"birth"`
	AuthKey  string `json:"authKey"`
}

type AuthEmailRequest struct {
	Email string `json:"email"`
}

type AuthEmailCheckRequest struct {
	Email   string `json:"email"`
	AuthKey string `json:"authKey"`
}

// IDFindRequest recovers a username. Name is the nickname.
type IDFindRequest struct {
	Name  string `json:"name"`
	Birth string `json:"birth"`
	Email string `json:"email"`
}

type PwFindRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Birth    string `json:"birth"`
	Email    string `json:"email"`
}

type PwChangeRequest struct {
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Email    string `json:"email"`
	AuthKey  string `json:"authKey"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ============================================================================
// Response Types
// ============================================================================

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

type Entry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	AnimalID  int       `json:"animalId,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Counter   int64     `json:"counter"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *Author   `json:"author,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *Author   `json:"author,omitempty"`
}

// EntryDetail is an entry plus its comments; Comments is empty for notices
// and boasts.
type EntryDetail struct {
	Entry    Entry     `json:"entry"`
	Comments []Comment `json:"comments"`
}

// Page is one page of a board listing. StartBlock and EndBlock are the
// one based pager window; callers clamp EndBlock against TotalPages.
type Page struct {
	Items      []Entry `json:"items"`
	Number     int     `json:"number"`
	Size       int     `json:"size"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"totalPages"`
	StartBlock int     `json:"startBlock"`
	EndBlock   int     `json:"endBlock"`
	Last       bool    `json:"last"`
}

type AnimalRank struct {
	AnimalID int     `json:"animalId"`
	Name     string  `json:"name"`
	Entries  []Entry `json:"entries"`
}

// Main is the landing page ranking.
type Main struct {
	Overall  []Entry      `json:"overall"`
	ByAnimal []AnimalRank `json:"byAnimal"`
}

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Birth     string `json:"birth"`
	Authority string `json:"authority"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of each dependency probed by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
