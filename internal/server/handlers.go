package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/contact"
	"github.com/Zachkp/pillar-dev/internal/content"
	"github.com/Zachkp/pillar-dev/internal/motion"
	"github.com/Zachkp/pillar-dev/internal/view"
)

func renderHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// writeError answers with the status carried by err. Backend failures get
// the retry prompt instead of the underlying cause.
func (s *Server) writeError(c *gin.Context, err error) {
	status := apperr.Status(err)
	body := gin.H{"error": err.Error()}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		body["error"] = appErr.Message
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
	}
	if apperr.Is(err, apperr.CodeBackend) || status >= http.StatusInternalServerError {
		body["error"] = content.FailureBody
		s.logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, body)
}

func (s *Server) handleIndex(c *gin.Context) {
	renderHTML(c, http.StatusOK, view.Page(view.PageData{Category: c.Query("category")}))
}

func (s *Server) handlePrivacy(c *gin.Context) {
	renderHTML(c, http.StatusOK, view.Privacy(s.cfg.Database.RetentionMonths))
}

func (s *Server) handleProjects(c *gin.Context) {
	c.JSON(http.StatusOK, content.Projects())
}

func (s *Server) handleProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.writeError(c, apperr.NewValidation("project id must be a number", "id"))
		return
	}
	p, err := content.ProjectByID(id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleExperience(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":  content.Experiences(),
		"levels": content.SkillLevels(),
	})
}

func (s *Server) handleSkills(c *gin.Context) {
	category := c.DefaultQuery("category", content.CategoryAll)
	if !content.IsCategory(category) {
		s.writeError(c, apperr.NewValidation("unknown category "+category, "category"))
		return
	}
	skills := content.FilterSkills(category)

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		renderHTML(c, http.StatusOK, view.SkillGrid(skills))
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "skills": skills})
}

func (s *Server) handleTimelineProgress(c *gin.Context) {
	var vals [3]float64
	for i, name := range []string{"top", "height", "viewport"} {
		v, err := strconv.ParseFloat(c.Query(name), 64)
		if err != nil {
			s.writeError(c, apperr.NewValidation(name+" must be a number", name))
			return
		}
		vals[i] = v
	}
	progress := motion.Progress(motion.Rect{Top: vals[0], Height: vals[1]}, vals[2])
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (s *Server) handleContactAPI(c *gin.Context) {
	var draft contact.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		s.writeError(c, bindError(err))
		return
	}

	sub, err := s.submitContact(c, draft)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  contact.StateSubmitted.String(),
		"id":      sub.ID,
		"message": content.SuccessBody,
	})
}

// handleContactForm serves browsers without the page script: the page is
// rendered again with the dialog open or the error shown.
func (s *Server) handleContactForm(c *gin.Context) {
	var draft contact.Draft
	bindErr := c.ShouldBind(&draft)

	var err error
	if bindErr != nil {
		err = bindError(bindErr)
	} else {
		_, err = s.submitContact(c, draft)
	}

	data := view.PageData{Category: c.Query("category")}
	if err == nil {
		data.Contact = view.ContactView{State: contact.StateSubmitted}
		renderHTML(c, http.StatusOK, view.Page(data))
		return
	}

	cv := view.ContactView{Draft: draft, Error: err.Error(), Field: apperr.FieldOf(err)}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		cv.Error = appErr.Message
	}
	switch {
	case apperr.Is(err, apperr.CodeBusy):
		cv.State = contact.StateSubmitting
	case !apperr.Is(err, apperr.CodeValidation):
		cv.State = contact.StateFailed
		cv.Error = content.FailureBody
		s.logger.Error("Contact submission failed", zap.Error(err))
	}
	data.Contact = cv
	renderHTML(c, apperr.Status(err), view.Page(data))
}

// submitContact runs the draft through the visitor's form. Forms are keyed by
// hashed IP so a second submission while one is in flight is rejected.
func (s *Server) submitContact(c *gin.Context, draft contact.Draft) (contact.Submission, error) {
	sender := s.hashIP(c.ClientIP())

	s.formsMu.Lock()
	form, ok := s.forms[sender]
	if !ok {
		form = contact.NewForm(s.submitter,
			contact.WithSender(sender),
			contact.WithClock(s.now),
			contact.WithObserver(func(st contact.State) {
				s.logger.Debug("Contact form state", zap.String("sender", sender), zap.Stringer("state", st))
			}))
		s.forms[sender] = form
	}
	s.formsMu.Unlock()

	if form.State() == contact.StateSubmitting {
		return contact.Submission{}, contact.ErrBusy
	}
	form.Fill(draft)
	sub, err := form.Submit(c.Request.Context())

	s.formsMu.Lock()
	if s.forms[sender] == form && form.State() != contact.StateSubmitting {
		delete(s.forms, sender)
	}
	s.formsMu.Unlock()

	if err == nil {
		s.logger.Info("Contact submitted", zap.String("message_id", sub.ID), zap.String("sender", sender))
	}
	return sub, err
}

// bindError turns a gin binding failure into a validation error naming the
// first offending field.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.NewValidation("invalid request body", "").WithCause(err)
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperr.NewValidation(field+" is required", field)
	case "email":
		return apperr.NewValidation(field+" is not a valid address", field)
	case "max":
		return apperr.NewValidation(field+" is too long", field)
	}
	return apperr.NewValidation(field+" is invalid", field)
}
