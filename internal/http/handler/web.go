package handler

import (
	"errors"
	"net/http"

	"communify/internal/core"
	"communify/internal/http/handler/middleware"
	"communify/internal/http/payload"
	"communify/internal/session"

	"go.uber.org/zap"
)

var (
	Home             = "GET /{$}"
	LoginPage        = "GET /login"
	LoginSubmit      = "POST /login"
	Logout           = "GET /logout"
	Dashboard        = "GET /dashboard"
	MemberList       = "GET /members"
	MemberForm       = "GET /members/new"
	MemberSubmit     = "POST /members/new"
	AttendanceForm   = "GET /attendance/new"
	AttendanceSubmit = "POST /attendance/new"
)

type WebHandler struct {
	logs      *zap.SugaredLogger
	renderer  ViewRenderer
	sessions  Sessions
	community CommunityService
}

func NewWebHandler(logger *zap.SugaredLogger, renderer ViewRenderer, sessions Sessions, communityService CommunityService) *WebHandler {
	return &WebHandler{
		logs:      logger,
		renderer:  renderer,
		sessions:  sessions,
		community: communityService,
	}
}

func (h *WebHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", nil, Home)
}

func (h *WebHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.render(w, r, "login.html", loginView{
		Notice: session.PopFlash(w, r),
	}, LoginPage)
}

func (h *WebHandler) HandleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.sessions.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	form := payload.LoginFormFromRequest(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "login.html", loginView{
			Error:    err.Error(),
			Username: form.Username,
		}, LoginSubmit)
		return
	}

	account, err := h.community.Authenticate(r.Context(), form.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.logs.Infow("login rejected",
				"username", form.Username,
				"handler", LoginSubmit,
				"request_id", requestId)
			h.render(w, r, "login.html", loginView{
				Notice:   AuthNotice,
				Username: form.Username,
			}, LoginSubmit)
			return
		}

		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", LoginSubmit,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	err = h.sessions.Issue(w, session.Identity{
		UserID:   account.ID,
		Username: account.Username,
	})
	if err != nil {
		h.logs.Errorw("failed to issue session",
			"error", err,
			"handler", LoginSubmit,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *WebHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *WebHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	account, err := h.community.AccountByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			// the account behind this session is gone
			h.sessions.Clear(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		h.logs.Errorw("failed to resolve session account",
			"error", err,
			"handler", Dashboard,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	h.render(w, r, "dashboard.html", dashboardView{
		Notice:   session.PopFlash(w, r),
		Username: account.Username,
	}, Dashboard)
}

func (h *WebHandler) HandleMemberList(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	members, err := h.community.Members(r.Context())
	if err != nil {
		h.logs.Errorw("failed to list members",
			"error", err,
			"handler", MemberList,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	view := membersView{
		Notice: session.PopFlash(w, r),
	}
	for _, m := range members {
		view.Members = append(view.Members, memberRow{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Phone: m.Phone,
		})
	}

	h.render(w, r, "members.html", view, MemberList)
}

func (h *WebHandler) HandleMemberForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	h.render(w, r, "member_form.html", memberFormView{
		Notice: session.PopFlash(w, r),
	}, MemberForm)
}

func (h *WebHandler) HandleMemberSubmit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	form := payload.MemberFormFromRequest(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "member_form.html", memberFormView{
			Error:   err.Error(),
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Address: form.Address,
		}, MemberSubmit)
		return
	}

	member, err := h.community.AddMember(r.Context(), form.ToRecord())
	if err != nil {
		h.logs.Errorw("failed to add member",
			"error", err,
			"handler", MemberSubmit,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	h.logs.Infow("member created",
		"member_id", member.ID,
		"handler", MemberSubmit,
		"request_id", requestId)

	session.SetFlash(w, "Member added")
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}

func (h *WebHandler) HandleAttendanceForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	h.render(w, r, "attendance_form.html", attendanceFormView{
		Notice: session.PopFlash(w, r),
	}, AttendanceForm)
}

func (h *WebHandler) HandleAttendanceSubmit(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := h.requireUser(w, r); !ok {
		return
	}

	form := payload.AttendanceFormFromRequest(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "attendance_form.html", attendanceFormView{
			Error:    err.Error(),
			MemberID: form.MemberID,
			Date:     form.Date,
		}, AttendanceSubmit)
		return
	}

	record, err := form.ToRecord()
	if err != nil {
		h.render(w, r, "attendance_form.html", attendanceFormView{
			Error:    err.Error(),
			MemberID: form.MemberID,
			Date:     form.Date,
		}, AttendanceSubmit)
		return
	}

	attendance, err := h.community.RecordAttendance(r.Context(), record)
	if err != nil {
		h.logs.Errorw("failed to record attendance",
			"error", err,
			"handler", AttendanceSubmit,
			"request_id", requestId)
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	h.logs.Infow("attendance recorded",
		"attendance_id", attendance.ID,
		"handler", AttendanceSubmit,
		"request_id", requestId)

	session.SetFlash(w, "Attendance recorded")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// requireUser gates protected routes: anonymous requests are redirected to
// the login page and never see protected content.
func (h *WebHandler) requireUser(w http.ResponseWriter, r *http.Request) (session.Identity, bool) {
	identity, ok := h.sessions.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return session.Identity{}, false
	}
	return identity, true
}

func (h *WebHandler) render(w http.ResponseWriter, r *http.Request, view string, data any, route string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.Render(w, view, data); err != nil {
		h.logs.Errorw("failed to render view",
			"error", err,
			"view", view,
			"handler", route,
			"request_id", requestID(r))
		http.Error(w, oopsErr, http.StatusInternalServerError)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
