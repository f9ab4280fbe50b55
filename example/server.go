package example

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	AjaxPath      = "/wp-admin/admin-ajax.php"
	SessionCookie = "wpmanga-session"
	sessionValue  = "s3ss10n"
)

// Item one manga in the listing, empty fields are left out of the markup
type Item struct {
	ID      string
	Title   string
	Slug    string
	Chapter string
}

// Items generates n complete items
func Items(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:      fmt.Sprint(1000 + i),
			Title:   fmt.Sprint("Manga ", i),
			Slug:    fmt.Sprint("manga-", i),
			Chapter: fmt.Sprint("Chapter ", 10+i),
		}
	}
	return items
}

// Site a tiny madara theme look alike
type Site struct {
	Items []Item
	// Nonce rendered into the login script, no script at all when empty
	Nonce string
	// ScriptWithoutNonce renders the login script but without a nonce
	ScriptWithoutNonce bool
	RequireNonce       bool
	// RequireSession wants the cookie set by the homepage on ajax calls
	RequireSession bool
	// AjaxStatus forces a status code on the ajax endpoint
	AjaxStatus int
	// HomepageStatus forces a status code on /
	HomepageStatus int
	// Delay before every answer
	Delay time.Duration
	Robots     string

	mu       sync.Mutex
	requests []Request
}

// Request what the site saw
type Request struct {
	Method  string
	Path    string
	Agent   string
	Nonce   string
	Session bool
}

func (s *Site) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	errParse := r.ParseForm()
	if errParse != nil {
		http.Error(w, errParse.Error(), http.StatusBadRequest)
		return
	}
	_, errCookie := r.Cookie(SessionCookie)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Agent:   r.UserAgent(),
		Nonce:   r.PostForm.Get("nonce"),
		Session: errCookie == nil,
	})
	s.mu.Unlock()

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-r.Context().Done():
			return
		}
	}

	switch r.URL.Path {
	case "/":
		if s.HomepageStatus != 0 {
			http.Error(w, "maintenance", s.HomepageStatus)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: sessionValue, Path: "/"})
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		fmt.Fprint(w, s.HomepageHTML())
	case "/robots.txt":
		if s.Robots == "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, s.Robots)
	case AjaxPath:
		s.serveAjax(w, r, errCookie == nil)
	default:
		http.NotFound(w, r)
	}
}

func (s *Site) serveAjax(w http.ResponseWriter, r *http.Request, hasSession bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "0", http.StatusBadRequest)
		return
	}
	if s.AjaxStatus != 0 {
		http.Error(w, "-1", s.AjaxStatus)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	nonceOK := !s.RequireNonce || (s.Nonce != "" && r.PostForm.Get("nonce") == s.Nonce)
	sessionOK := !s.RequireSession || hasSession
	if r.PostForm.Get("action") != "madara_load_more" || !nonceOK || !sessionOK {
		fmt.Fprint(w, "0")
		return
	}
	fmt.Fprint(w, listing(s.Items))
}

// HomepageHTML the markup served on /
func (s *Site) HomepageHTML() string {
	sb := &strings.Builder{}
	sb.WriteString("<!DOCTYPE html>\n<html><head><title>Read Manga Online</title>\n")
	switch {
	case s.ScriptWithoutNonce:
		sb.WriteString(`<script id="wp-manga-login-ajax-js-extra">var wpMangaLogin = {"admin_ajax":"\/wp-admin\/admin-ajax.php","messages":{"please_enter_username":"Please enter username"}};</script>` + "\n")
	case s.Nonce != "":
		sb.WriteString(`<script id="wp-manga-login-ajax-js-extra">var wpMangaLogin = {"admin_ajax":"\/wp-admin\/admin-ajax.php","nonce":"` + s.Nonce + `","messages":{"please_enter_username":"Please enter username"}};</script>` + "\n")
	}
	sb.WriteString("</head><body>\n<div class=\"page-listing-item\">\n")
	sb.WriteString(listing(s.Items))
	sb.WriteString("</div>\n</body></html>\n")
	return sb.String()
}

func listing(items []Item) string {
	sb := &strings.Builder{}
	for _, item := range items {
		sb.WriteString(`<div class="page-item-detail manga">` + "\n")
		if item.ID != "" {
			fmt.Fprintf(sb, `	<div class="item-thumb hover-details c-image-hover" data-post-id="%s"><a href="/manga/%s/"><img src="/%s.jpg"></a></div>`+"\n", item.ID, item.Slug, item.Slug)
		}
		sb.WriteString(`	<div class="item-summary">` + "\n")
		if item.Title != "" {
			fmt.Fprintf(sb, `		<div class="post-title font-title"><h3 class="h5">
			<a href="/manga/%s/">  %s  </a>
		</h3></div>`+"\n", item.Slug, item.Title)
		}
		if item.Chapter != "" {
			fmt.Fprintf(sb, `		<div class="list-chapter"><div class="chapter-item"><span class="font-meta chapter"> <a href="/manga/%s/chapter/">%s</a> </span></div></div>`+"\n", item.Slug, item.Chapter)
		}
		sb.WriteString("	</div>\n</div>\n")
	}
	return sb.String()
}
