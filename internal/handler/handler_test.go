package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/internal/service"
	"github.com/weiawesome/wes-social/internal/testutil"
	"github.com/weiawesome/wes-social/pkg/jwt"
	"github.com/weiawesome/wes-social/pkg/middleware"
	"github.com/weiawesome/wes-social/pkg/pubsub"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e envelope) code() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Code
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.OpenDB(t)

	tokens, err := jwt.NewManager("handler-secret", time.Hour, "test")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	accountRepo := repository.NewGormAccountRepository(db)
	postRepo := repository.NewGormPostRepository(db)
	followRepo := repository.NewGormFollowRepository(db)
	events := pubsub.NopPublisher{}

	h := NewHandler(Services{
		Accounts: service.NewAccountService(service.AccountDeps{
			Accounts:   accountRepo,
			Posts:      postRepo,
			Follows:    followRepo,
			Tokens:     tokens,
			BcryptCost: bcrypt.MinCost,
		}),
		Posts:   service.NewPostService(postRepo, accountRepo),
		Likes:   service.NewLikeService(repository.NewGormLikeRepository(db), postRepo, accountRepo, events),
		Follows: service.NewFollowService(followRepo, accountRepo, events),
		Replies: service.NewReplyService(repository.NewGormReplyRepository(db), postRepo, accountRepo, events),
	}, middleware.NewAuthMiddleware(tokens))

	return &testServer{t: t, router: NewRouter(h, zerolog.Nop())}
}

func (s *testServer) do(method, path, token, body string) (int, envelope) {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env
}

// signup registers an account and logs it in, returning its id and token.
func (s *testServer) signup(name string) (string, string) {
	s.t.Helper()
	body := `{"name":"` + name + `","email":"` + name + `@example.com","username":"` + name + `","password":"secret-` + name + `"}`
	if code, env := s.do(http.MethodPost, "/api/v1/accounts", "", body); code != http.StatusOK {
		s.t.Fatalf("register %s: status = %d, error = %s", name, code, env.code())
	}

	code, env := s.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"`+name+`@example.com","password":"secret-`+name+`"}`)
	if code != http.StatusOK {
		s.t.Fatalf("login %s: status = %d, error = %s", name, code, env.code())
	}
	var auth struct {
		Token     string `json:"token"`
		AccountID string `json:"account_id"`
	}
	s.decode(env, &auth)
	return auth.AccountID, auth.Token
}

func (s *testServer) decode(env envelope, v interface{}) {
	s.t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		s.t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func (s *testServer) createID(path, token, body string) string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, path, token, body)
	if code != http.StatusOK {
		s.t.Fatalf("POST %s: status = %d, error = %s", path, code, env.code())
	}
	var created struct {
		ID string `json:"id"`
	}
	s.decode(env, &created)
	return created.ID
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestFollowScenario(t *testing.T) {
	s := newTestServer(t)
	_, tokenA := s.signup("alice")
	idB, _ := s.signup("bob")

	body := `{"followee_id":"` + idB + `"}`
	followID := s.createID("/api/v1/follows", tokenA, body)

	code, env := s.do(http.MethodPost, "/api/v1/follows", tokenA, body)
	if code != http.StatusBadRequest || env.code() != "DUPLICATE_ACTION" {
		t.Fatalf("repeat follow: status = %d, code = %s", code, env.code())
	}

	if code, env := s.do(http.MethodDelete, "/api/v1/follows/"+followID, tokenA, ""); code != http.StatusOK {
		t.Fatalf("delete follow: status = %d, code = %s", code, env.code())
	}

	if code, env := s.do(http.MethodPost, "/api/v1/follows", tokenA, body); code != http.StatusOK {
		t.Fatalf("refollow: status = %d, code = %s", code, env.code())
	}
}

func TestFollowRejections(t *testing.T) {
	s := newTestServer(t)
	idA, tokenA := s.signup("alice")

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"self", `{"followee_id":"` + idA + `"}`, http.StatusBadRequest, "SELF_REFERENCE"},
		{"missing", `{}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"malformed", `{"followee_id":"nope"}`, http.StatusInternalServerError, "DATABASE_ERROR"},
		{"absent", `{"followee_id":"` + uuid.NewString() + `"}`, http.StatusBadRequest, "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := s.do(http.MethodPost, "/api/v1/follows", tokenA, tt.body)
			if code != tt.status || env.code() != tt.code {
				t.Fatalf("status = %d code = %s, want %d %s", code, env.code(), tt.status, tt.code)
			}
		})
	}
}

func TestReplyScenario(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signup("alice")
	postID := s.createID("/api/v1/posts", token, `{"content":"first post"}`)

	code, env := s.do(http.MethodPost, "/api/v1/replies", token, `{"post_id":"`+postID+`","content":null}`)
	if code != http.StatusBadRequest || env.code() != "VALIDATION_FAILED" {
		t.Fatalf("null content: status = %d, code = %s", code, env.code())
	}

	replyID := s.createID("/api/v1/replies", token, `{"post_id":"`+postID+`","content":"well said"}`)

	code, env = s.do(http.MethodGet, "/api/v1/replies/"+replyID, token, "")
	if code != http.StatusOK {
		t.Fatalf("get reply: status = %d", code)
	}
	var reply struct {
		Content string `json:"content"`
	}
	s.decode(env, &reply)
	if reply.Content != "well said" {
		t.Fatalf("content = %q, want %q", reply.Content, "well said")
	}

	code, env = s.do(http.MethodPut, "/api/v1/replies/"+replyID, token, `{"content":123}`)
	if code != http.StatusInternalServerError || env.code() != "DATABASE_ERROR" {
		t.Fatalf("numeric content: status = %d, code = %s", code, env.code())
	}
}

func TestLikeScenario(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signup("alice")
	postID := s.createID("/api/v1/posts", token, `{"content":"like me"}`)

	likeID := s.createID("/api/v1/likes", token, `{"post_id":"`+postID+`"}`)

	code, env := s.do(http.MethodPost, "/api/v1/likes", token, `{"post_id":"`+postID+`"}`)
	if code != http.StatusBadRequest || env.code() != "DUPLICATE_ACTION" {
		t.Fatalf("duplicate like: status = %d, code = %s", code, env.code())
	}

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/likes/" + likeID, http.StatusOK},
		{"/api/v1/likes/" + uuid.NewString(), http.StatusNotFound},
		{"/api/v1/likes/not-an-id", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if code, _ := s.do(http.MethodGet, tt.path, token, ""); code != tt.status {
			t.Errorf("GET %s: status = %d, want %d", tt.path, code, tt.status)
		}
	}

	code, env = s.do(http.MethodPost, "/api/v1/likes", token, `{"post_id":"`+uuid.NewString()+`"}`)
	if code != http.StatusInternalServerError {
		t.Fatalf("like absent post: status = %d, code = %s", code, env.code())
	}
}

func TestLoginBoundary(t *testing.T) {
	s := newTestServer(t)
	s.signup("alice")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing password", `{"email":"alice@example.com"}`, http.StatusBadRequest},
		{"missing email", `{"password":"secret-alice"}`, http.StatusBadRequest},
		{"wrong password", `{"email":"alice@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown account", `{"email":"bob@example.com","password":"x"}`, http.StatusUnauthorized},
		{"non-string email", `{"email":42,"password":"x"}`, http.StatusInternalServerError},
		{"ok", `{"email":"alice@example.com","password":"secret-alice"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, env := s.do(http.MethodPost, "/api/v1/auth/login", "", tt.body); code != tt.status {
				t.Fatalf("status = %d (code %s), want %d", code, env.code(), tt.status)
			}
		})
	}
}

func TestAccountProfileAndDelete(t *testing.T) {
	s := newTestServer(t)
	idA, tokenA := s.signup("alice")
	idB, tokenB := s.signup("bob")
	s.createID("/api/v1/follows", tokenB, `{"followee_id":"`+idA+`"}`)
	s.createID("/api/v1/posts", tokenA, `{"content":"hi"}`)

	code, env := s.do(http.MethodGet, "/api/v1/accounts/"+idA, tokenB, "")
	if code != http.StatusOK {
		t.Fatalf("profile: status = %d", code)
	}
	var profile struct {
		Username       string `json:"username"`
		FollowersCount int64  `json:"followers_count"`
		PostsCount     int64  `json:"posts_count"`
	}
	s.decode(env, &profile)
	if profile.Username != "alice" || profile.FollowersCount != 1 || profile.PostsCount != 1 {
		t.Fatalf("profile = %+v", profile)
	}

	if code, _ := s.do(http.MethodDelete, "/api/v1/accounts/"+idA, tokenB, ""); code != http.StatusNotFound {
		t.Fatalf("delete other account: status = %d, want %d", code, http.StatusNotFound)
	}
	if code, _ := s.do(http.MethodDelete, "/api/v1/accounts/"+idA, tokenA, ""); code != http.StatusOK {
		t.Fatalf("delete own account: status = %d", code)
	}

	code, env = s.do(http.MethodGet, "/api/v1/follows", tokenB, "")
	if code != http.StatusOK {
		t.Fatalf("list follows: status = %d", code)
	}
	var follows []json.RawMessage
	s.decode(env, &follows)
	if len(follows) != 0 {
		t.Fatalf("follows after delete = %d, want 0", len(follows))
	}

	if code, _ := s.do(http.MethodGet, "/api/v1/accounts/"+idB+"/posts", tokenB, ""); code != http.StatusOK {
		t.Fatalf("list posts: status = %d", code)
	}
}

func TestDeletedAccountTokenCannotWrite(t *testing.T) {
	s := newTestServer(t)
	idA, tokenA := s.signup("alice")
	idB, tokenB := s.signup("bob")
	postB := s.createID("/api/v1/posts", tokenB, `{"content":"bob post"}`)

	if code, _ := s.do(http.MethodDelete, "/api/v1/accounts/"+idA, tokenA, ""); code != http.StatusOK {
		t.Fatalf("delete own account: status = %d", code)
	}

	writes := []struct {
		path string
		body string
	}{
		{"/api/v1/follows", `{"followee_id":"` + idB + `"}`},
		{"/api/v1/likes", `{"post_id":"` + postB + `"}`},
		{"/api/v1/replies", `{"post_id":"` + postB + `","content":"ghost"}`},
		{"/api/v1/posts", `{"content":"ghost"}`},
	}
	for _, w := range writes {
		code, env := s.do(http.MethodPost, w.path, tokenA, w.body)
		if code != http.StatusUnauthorized || env.code() != "UNAUTHORIZED" {
			t.Fatalf("POST %s: status = %d, code = %q, want 401 UNAUTHORIZED", w.path, code, env.code())
		}
	}

	code, env := s.do(http.MethodGet, "/api/v1/accounts/"+idB, tokenB, "")
	if code != http.StatusOK {
		t.Fatalf("profile: status = %d", code)
	}
	var profile struct {
		FollowersCount int64 `json:"followers_count"`
	}
	s.decode(env, &profile)
	if profile.FollowersCount != 0 {
		t.Fatalf("followers_count = %d, want 0", profile.FollowersCount)
	}
}

// Every service is nil, so reaching any handler would panic and surface as 500.
func TestProtectedRoutesRejectBeforeStore(t *testing.T) {
	tokens, err := jwt.NewManager("handler-secret", time.Hour, "test")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	router := NewRouter(NewHandler(Services{}, middleware.NewAuthMiddleware(tokens)), zerolog.Nop())

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/accounts"},
		{http.MethodPut, "/api/v1/accounts/x"},
		{http.MethodPost, "/api/v1/posts"},
		{http.MethodPost, "/api/v1/likes"},
		{http.MethodDelete, "/api/v1/likes/x"},
		{http.MethodPost, "/api/v1/follows"},
		{http.MethodDelete, "/api/v1/follows/x"},
		{http.MethodPost, "/api/v1/replies"},
		{http.MethodPut, "/api/v1/replies/x"},
		{http.MethodDelete, "/api/v1/replies/x"},
	}
	for _, header := range []string{"", "Bearer", "Bearer garbage"} {
		for _, rt := range routes {
			req := httptest.NewRequest(rt.method, rt.path, strings.NewReader(`{}`))
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("%s %s with %q: status = %d, want %d", rt.method, rt.path, header, w.Code, http.StatusUnauthorized)
			}
		}
	}
}
