package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/WJZ-P/CommitCraft/pkg/buildinfo"
	"github.com/WJZ-P/CommitCraft/pkg/cache"
	"github.com/WJZ-P/CommitCraft/pkg/calendar"
	cerrors "github.com/WJZ-P/CommitCraft/pkg/errors"
	"github.com/WJZ-P/CommitCraft/pkg/pipeline"
)

// Cache-Control values. Calendars change at most a few times an hour;
// a seeded scene never changes.
const (
	calendarCacheControl = "public, s-maxage=3600, stale-while-revalidate=1800"
	seededCacheControl   = "public, max-age=86400, immutable"
)

type healthBody struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.fetchOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cal, err := s.runner.Fetch(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := calendar.Marshal(cal)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", calendarCacheControl)
	w.Write(data)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	opts, err := s.sceneOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if cerrors.Is(err, cerrors.ErrCodeEmptyCalendar) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	h := w.Header()
	h.Set("Content-Type", pipeline.ContentType(format))
	h.Set("X-CommitCraft-Seed", strconv.FormatUint(res.Scene.Seed, 10))
	if opts.Seeded() {
		h.Set("Cache-Control", seededCacheControl)
	} else {
		h.Set("Cache-Control", "no-store")
	}
	if isTrue(r.URL.Query().Get("download")) {
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Scene.DownloadName(format)))
	}
	w.Write(res.Artifacts[format])
}

// fetchOptions reads the calendar query: username, from, to, token, refresh.
func (s *Server) fetchOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := s.opts.Defaults
	opts.Username = chi.URLParam(r, "username")
	opts.Input = ""
	opts.From = q.Get("from")
	opts.To = q.Get("to")
	opts.Refresh = isTrue(q.Get("refresh"))
	opts.GitHubToken = s.opts.Token
	if tok := q.Get("token"); tok != "" && tok != s.opts.Token {
		opts.GitHubToken = tok
		opts.CacheScope = cache.TokenScope(tok)
	}
	if err := opts.ValidateForFetch(); err != nil {
		return opts, err
	}
	if opts.GitHubToken == "" {
		return opts, cerrors.New(cerrors.ErrCodeUnauthorized, "a GitHub token is required (pass ?token= or configure one)")
	}
	return opts, nil
}

// sceneOptions adds the rendering query to fetchOptions:
// format, mode, seed, tooltips, animate, scale, label, script.
func (s *Server) sceneOptions(r *http.Request) (pipeline.Options, error) {
	opts, err := s.fetchOptions(r)
	if err != nil {
		return opts, err
	}
	q := r.URL.Query()

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}

	if v := q.Get("mode"); v != "" {
		opts.Mode = v
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, cerrors.New(cerrors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		opts.Seed = &seed
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, cerrors.New(cerrors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
		opts.Scale = scale
	}
	if v := q.Get("tooltips"); v != "" {
		opts.DisableTooltips = !isTrue(v)
	}
	if v := q.Get("animate"); v != "" {
		opts.DisableAnimation = !isTrue(v)
	}
	if v := q.Get("script"); v != "" {
		opts.NoScript = !isTrue(v)
	}
	if v := q.Get("label"); v != "" {
		opts.Label = v
	} else {
		opts.Label = opts.Username
	}
	return opts, opts.ValidateForRender()
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

type errorBody struct {
	Error      string       `json:"error"`
	Code       cerrors.Code `json:"code"`
	RequestID  string       `json:"request_id,omitempty"`
	RetryAfter int          `json:"retry_after,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code cerrors.Code) int {
	switch code {
	case cerrors.ErrCodeInvalidInput, cerrors.ErrCodeInvalidUsername, cerrors.ErrCodeInvalidFormat,
		cerrors.ErrCodeInvalidMode, cerrors.ErrCodeInvalidDate, cerrors.ErrCodeInvalidLabel,
		cerrors.ErrCodeInvalidCalendar:
		return http.StatusBadRequest
	case cerrors.ErrCodeNotFound, cerrors.ErrCodeUserNotFound, cerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case cerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cerrors.ErrCodeForbidden:
		return http.StatusForbidden
	case cerrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case cerrors.ErrCodeNetwork:
		return http.StatusBadGateway
	case cerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := cerrors.GetCode(err)
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	status := statusFor(code)
	body := errorBody{
		Error:     cerrors.UserMessage(err),
		Code:      code,
		RequestID: RequestID(r.Context()),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", body.RequestID)
		body.Error = "internal error"
	}

	var rl *cerrors.RateLimitedError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		body.RetryAfter = rl.RetryAfter
		w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter))
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
