// Package petsdk is the Go client for the pet community board service.
//
// JSON endpoints answer with an Envelope whose Code is CodeSuccess or
// CodeFailure. Form endpoints answer with a small script page which the
// client decodes into a ScriptResult so callers can tell where the browser
// would have gone next.
//
// The Client keeps the session cookie in a cookie jar, so a single Client
// behaves like one browser: Login once, then call the authenticated
// operations.
//
//	c, _ := petsdk.NewClient("http://localhost:8080")
//	res, err := c.Login(ctx, petsdk.LoginRequest{Username: "ssar", Password: "1234"})
//	if err == nil && res.Href == "/" {
//		page, _ := c.ListNotices(ctx, 0)
//		_ = page
//	}
package petsdk
