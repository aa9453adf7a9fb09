package main

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"ship_daily_report/report"
)

const (
	sessionName  = "ship_report"
	maxBodyBytes = 1 << 20
)

type server struct {
	cfg    Config
	logger *logrus.Logger
	store  sessions.Store
}

func newServer(cfg Config, logger *logrus.Logger) *server {
	store := sessions.NewCookieStore(cfg.sessionKey())
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.SecureCookies
	store.Options.SameSite = http.SameSiteLaxMode

	return &server{cfg: cfg, logger: logger, store: store}
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(withRequestID, s.withLogging, s.withRecover)

	r.HandleFunc("/healthz", healthHandler).Methods("GET")
	r.HandleFunc("/login", s.loginPageHandler).Methods("GET")
	r.HandleFunc("/login", s.loginHandler).Methods("POST")
	r.HandleFunc("/logout", s.logoutHandler).Methods("POST")

	r.HandleFunc("/", s.requireAuth(s.formPageHandler)).Methods("GET")
	r.HandleFunc("/", s.requireAuth(s.previewFormHandler)).Methods("POST")
	r.HandleFunc("/export/{format}", s.requireAuth(s.exportFormHandler)).Methods("POST")
	r.HandleFunc("/api/preview", s.requireAuth(s.apiPreviewHandler)).Methods("POST")
	r.HandleFunc("/api/export/{format}", s.requireAuth(s.apiExportHandler)).Methods("POST")
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Authentication handlers. They only matter when an access password hash is
// configured; otherwise the form is open.
func (s *server) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.AccessGated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderPage(w, r, http.StatusOK, "login.html", loginPage{})
}

func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.AccessGated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	password := r.FormValue("password")

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AccessPasswordHash), []byte(password)); err != nil {
		s.requestLogger(r).Warn("rejected access password")
		s.renderPage(w, r, http.StatusUnauthorized, "login.html", loginPage{Error: "Invalid password"})
		return
	}

	session, _ := s.store.Get(r, sessionName)
	session.Values["authenticated"] = true
	session.Values["last_activity"] = time.Now().Unix()
	if err := session.Save(r, w); err != nil {
		logError(s.requestLogger(r), "handlers", "loginHandler", "save session", nil, err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, "authenticated")
	delete(session.Values, "last_activity")
	session.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// requireAuth enforces the access password and its idle timeout.
func (s *server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.AccessGated() {
			next(w, r)
			return
		}
		session, _ := s.store.Get(r, sessionName)

		authenticated, _ := session.Values["authenticated"].(bool)
		lastActivity, ok := session.Values["last_activity"].(int64)
		if !authenticated || !ok || time.Since(time.Unix(lastActivity, 0)) > s.cfg.SessionIdleTimeout {
			delete(session.Values, "authenticated")
			delete(session.Values, "last_activity")
			session.Save(r, w)
			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		session.Values["last_activity"] = time.Now().Unix()
		session.Save(r, w)

		next(w, r)
	}
}

// Form page handlers
func (s *server) formPageHandler(w http.ResponseWriter, r *http.Request) {
	view := defaultFormView()
	s.loadDraft(r, &view)
	s.renderForm(w, r, view)
}

func (s *server) previewFormHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	view := parseFormValues(r.PostForm)
	s.saveDraft(w, r, view)
	s.renderForm(w, r, view)
}

func (s *server) renderForm(w http.ResponseWriter, r *http.Request, view formView) {
	s.renderPage(w, r, http.StatusOK, "form.html", formPage{
		Form:    view,
		Preview: report.RenderText(report.Build(view.Form())),
		Gated:   s.cfg.AccessGated(),
	})
}

func (s *server) exportFormHandler(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	view := parseFormValues(r.PostForm)
	s.saveDraft(w, r, view)
	s.writeArtifact(w, r, report.Build(view.Form()), format)
}

// API handlers
func (s *server) apiPreviewHandler(w http.ResponseWriter, r *http.Request) {
	form, ok := s.decodeReportInput(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(report.RenderText(report.Build(form))))
}

func (s *server) apiExportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, ok := s.decodeReportInput(w, r)
	if !ok {
		return
	}
	s.writeArtifact(w, r, report.Build(form), format)
}

func (s *server) decodeReportInput(w http.ResponseWriter, r *http.Request) (report.Form, bool) {
	var in ReportInput
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return report.Form{}, false
	}
	if err := in.Validate(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "invalid report",
			"fields": validationFields(err),
		})
		return report.Form{}, false
	}
	form, err := in.Form()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return report.Form{}, false
	}
	return form, true
}

func (s *server) writeArtifact(w http.ResponseWriter, r *http.Request, p report.Payload, format report.Format) {
	artifact, err := report.Export(p, format)
	if err != nil {
		logError(s.requestLogger(r), "handlers", "writeArtifact", "export "+string(format), p.Ship(), err)
		http.Error(w, "Failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Write(artifact.Data)
}

// The draft remembers the header fields between visits. Section content is
// left out so the cookie stays within browser size limits.
func (s *server) loadDraft(r *http.Request, view *formView) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return
	}
	fields := map[string]*string{
		"ship":       &view.Ship,
		"start_date": &view.StartDate,
		"end_date":   &view.EndDate,
		"location":   &view.Location,
		"ppe":        &view.PPE,
		"signature":  &view.Signature,
	}
	for key, dst := range fields {
		if v, ok := session.Values["draft_"+key].(string); ok {
			*dst = v
		}
	}
}

func (s *server) saveDraft(w http.ResponseWriter, r *http.Request, view formView) {
	session, _ := s.store.Get(r, sessionName)
	session.Values["draft_ship"] = view.Ship
	session.Values["draft_start_date"] = view.StartDate
	session.Values["draft_end_date"] = view.EndDate
	session.Values["draft_location"] = view.Location
	session.Values["draft_ppe"] = view.PPE
	session.Values["draft_signature"] = view.Signature
	if err := session.Save(r, w); err != nil {
		s.requestLogger(r).WithError(err).Warn("could not remember form draft")
	}
}
