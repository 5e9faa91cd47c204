package petsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the community service on behalf of one browser session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar. Redirects are not
// followed so callers can observe them.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) health(ctx context.Context, path string) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

func (c *Client) Livez(ctx context.Context) error  { return c.health(ctx, "/livez") }
func (c *Client) Readyz(ctx context.Context) error { return c.health(ctx, "/readyz") }

// ============================================================================
// Account
// ============================================================================

func (c *Client) Login(ctx context.Context, req LoginRequest) (ScriptResult, error) {
	return c.doForm(ctx, "/login", url.Values{
		"username": {req.Username},
		"password": {req.Password},
	})
}

func (c *Client) Join(ctx context.Context, req JoinRequest) (ScriptResult, error) {
	return c.doForm(ctx, "/join", url.Values{
		"username": {req.Username},
		"password": {req.Password},
		"nickname": {req.Nickname},
		"phone":    {req.Phone},
		"email":    {req.Email},
		"birth":    {req.Birth},
		"authKey":  {req.AuthKey},
	})
}

// Logout clears the session. The server answers with a redirect to /.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/logout", nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		return &APIError{StatusCode: resp.StatusCode, Message: "logout failed"}
	}
	return nil
}

// IssueAuthKey asks the server to mail a fresh verification key to email.
func (c *Client) IssueAuthKey(ctx context.Context, email string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/email", AuthEmailRequest{Email: email}, nil)
	return err
}

// CheckAuthKey reports whether key is the latest one issued for email.
func (c *Client) CheckAuthKey(ctx context.Context, email, key string) (bool, error) {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/email/check", AuthEmailCheckRequest{Email: email, AuthKey: key}, nil)
	if err == nil {
		return true, nil
	}
	if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusOK {
		return false, nil
	}
	return false, err
}

func (c *Client) FindUsername(ctx context.Context, req IDFindRequest) (string, error) {
	var username string
	_, err := c.doJSON(ctx, http.MethodPost, "/id/modal", req, &username)
	return username, err
}

func (c *Client) StartPasswordReset(ctx context.Context, req PwFindRequest) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/pw/modal", req, nil)
	return err
}

func (c *Client) ChangePassword(ctx context.Context, password string) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/pw/change", PwChangeRequest{Password: password}, nil)
	return err
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UserUpdateRequest) (User, error) {
	var u User
	_, err := c.doJSON(ctx, http.MethodPut, "/api/user/"+url.PathEscape(id), req, &u)
	return u, err
}

func (c *Client) PromoteAdmin(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodPut, "/user/admin/update/"+url.PathEscape(id), nil, nil)
	return err
}

// Me returns the session user.
func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	_, err := c.doJSON(ctx, http.MethodGet, "/api/user/me", nil, &u)
	return u, err
}

// ============================================================================
// Boards
// ============================================================================

func pagePath(base string, page int) string {
	return base + "?page=" + strconv.Itoa(page)
}

func animalPath(animalID int, rest string) string {
	return "/" + strconv.Itoa(animalID) + rest
}

func (c *Client) getPage(ctx context.Context, path string) (Page, error) {
	var p Page
	_, err := c.doJSON(ctx, http.MethodGet, path, nil, &p)
	return p, err
}

func (c *Client) getDetail(ctx context.Context, path string) (EntryDetail, error) {
	var d EntryDetail
	_, err := c.doJSON(ctx, http.MethodGet, path, nil, &d)
	return d, err
}

func boardForm(req BoardSaveRequest) url.Values {
	return url.Values{"title": {req.Title}, "content": {req.Content}}
}

func (c *Client) ListNotices(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, pagePath("/notice", page))
}

func (c *Client) Notice(ctx context.Context, id int64) (EntryDetail, error) {
	return c.getDetail(ctx, fmt.Sprintf("/notice/%d", id))
}

func (c *Client) CreateNotice(ctx context.Context, req BoardSaveRequest) (ScriptResult, error) {
	return c.doForm(ctx, "/notice", boardForm(req))
}

func (c *Client) UpdateNotice(ctx context.Context, id int64, req BoardSaveRequest) error {
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/notice/%d", id), req, nil)
	return err
}

func (c *Client) DeleteNotice(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/notice/%d", id), nil, nil)
	return err
}

func (c *Client) ListQna(ctx context.Context, animalID, page int) (Page, error) {
	return c.getPage(ctx, pagePath(animalPath(animalID, "/qna"), page))
}

func (c *Client) Qna(ctx context.Context, animalID int, id int64) (EntryDetail, error) {
	return c.getDetail(ctx, animalPath(animalID, fmt.Sprintf("/qna/%d", id)))
}

func (c *Client) CreateQna(ctx context.Context, animalID int, req BoardSaveRequest) (ScriptResult, error) {
	return c.doForm(ctx, animalPath(animalID, "/qna"), boardForm(req))
}

func (c *Client) UpdateQna(ctx context.Context, animalID int, id int64, req BoardSaveRequest) error {
	_, err := c.doJSON(ctx, http.MethodPut, animalPath(animalID, fmt.Sprintf("/qna/%d", id)), req, nil)
	return err
}

func (c *Client) DeleteQna(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/qna/%d", id), nil, nil)
	return err
}

func (c *Client) CreateComment(ctx context.Context, animalID int, qnaID int64, content string) (ScriptResult, error) {
	return c.doForm(ctx, animalPath(animalID, fmt.Sprintf("/qna/%d/comment", qnaID)), url.Values{
		"content": {content},
	})
}

func (c *Client) ListBoasts(ctx context.Context, animalID, page int) (Page, error) {
	return c.getPage(ctx, pagePath(animalPath(animalID, "/boast"), page))
}

func (c *Client) Boast(ctx context.Context, animalID int, id int64) (EntryDetail, error) {
	return c.getDetail(ctx, animalPath(animalID, fmt.Sprintf("/boast/%d", id)))
}

func (c *Client) CreateBoast(ctx context.Context, animalID int, req BoardSaveRequest) (ScriptResult, error) {
	return c.doForm(ctx, animalPath(animalID, "/boast"), boardForm(req))
}

func (c *Client) UpdateBoast(ctx context.Context, animalID int, id int64, req BoardSaveRequest) error {
	_, err := c.doJSON(ctx, http.MethodPut, animalPath(animalID, fmt.Sprintf("/boast/%d", id)), req, nil)
	return err
}

func (c *Client) DeleteBoast(ctx context.Context, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/boast/%d", id), nil, nil)
	return err
}

// BoastRank returns the n most viewed boasts for animalID.
func (c *Client) BoastRank(ctx context.Context, animalID, n int) ([]Entry, error) {
	var out []Entry
	_, err := c.doJSON(ctx, http.MethodGet, animalPath(animalID, "/boast/rank?n="+strconv.Itoa(n)), nil, &out)
	return out, err
}

func (c *Client) Main(ctx context.Context) (Main, error) {
	var m Main
	_, err := c.doJSON(ctx, http.MethodGet, "/main", nil, &m)
	return m, err
}
