package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/models"
	"rolecrm/internal/pagination"
	"rolecrm/internal/services"
)

// ContactHandler handles contact-related requests
type ContactHandler struct {
	contacts services.ContactServicer
	perms    services.PermissionServicer
	activity services.ActivityServicer
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts services.ContactServicer, perms services.PermissionServicer, activity services.ActivityServicer) *ContactHandler {
	return &ContactHandler{contacts: contacts, perms: perms, activity: activity}
}

// ContactRequest is the payload for creating or updating a contact.
// Omitted fields are left unchanged on update.
type ContactRequest struct {
	Name     *string   `json:"name" binding:"omitempty,max=200"`
	Email    *string   `json:"email" binding:"omitempty,max=255"`
	Phone    *string   `json:"phone" binding:"omitempty,max=50"`
	Company  *string   `json:"company" binding:"omitempty,max=200"`
	Category *string   `json:"category" binding:"omitempty,max=50"`
	Notes    *string   `json:"notes" binding:"omitempty,max=5000"`
	Tags     *[]string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

func (r ContactRequest) input() services.ContactInput {
	in := services.ContactInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Company:  r.Company,
		Category: r.Category,
		Notes:    r.Notes,
	}
	if r.Tags != nil {
		in.Tags = *r.Tags
		in.SetTags = true
	}
	return in
}

// ContactResponse is a contact as the caller may see it. Fields the
// caller's role may not view are omitted.
type ContactResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func visible(ev access.Evaluator, field, value string) *string {
	if !ev.CanView(field) {
		return nil
	}
	return &value
}

// maskContact applies the caller's view flags to a contact
func maskContact(ev access.Evaluator, contact *models.Contact) ContactResponse {
	resp := ContactResponse{
		ID:        contact.ID,
		OwnerID:   contact.OwnerID,
		Name:      contact.Name,
		Category:  contact.Category,
		Email:     visible(ev, access.FieldEmail, contact.Email),
		Phone:     visible(ev, access.FieldPhone, contact.Phone),
		Company:   visible(ev, access.FieldCompany, contact.Company),
		Notes:     visible(ev, access.FieldNotes, contact.Notes),
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
	if ev.CanView(access.FieldTags) {
		resp.Tags = contact.Tags
		if resp.Tags == nil {
			resp.Tags = []string{}
		}
	}
	return resp
}

func maskContacts(ev access.Evaluator, contacts []models.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = maskContact(ev, &contacts[i])
	}
	return out
}

// CreateContact handles contact creation
// @Summary     Create contact
// @Description Create a contact in one of the caller's categories. Fields the caller may not edit must be omitted.
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ContactRequest true "Contact data"
// @Success     201 {object} ContactResponse "Contact created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Category or field not allowed"
// @Router      /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contacts.CreateContact(c.Request.Context(), ev, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(ev.Identity().ID, access.LogContactCreate, map[string]any{
		"contact_id": contact.ID,
		"category":   contact.Category,
	})

	c.JSON(http.StatusCreated, maskContact(ev, contact))
}

// ListContacts returns the contacts in the caller's categories
// @Summary     List contacts
// @Description List contacts in the caller's categories, newest first, with fields masked by role
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[ContactResponse] "Paginated contacts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} DeniedResponse "Unauthorized"
// @Router      /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.contacts.ListContacts(ev, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPageResponse(maskContacts(ev, resp.Data), resp.Page, resp.PageSize, resp.TotalItems))
}

// GetContact returns one contact
// @Summary     Get contact
// @Description Get a contact in one of the caller's categories
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Contact ID"
// @Success     200 {object} ContactResponse "Contact"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contact, err := h.contacts.GetContact(ev, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, maskContact(ev, contact))
}

// UpdateContact applies a partial update
// @Summary     Update contact
// @Description Update the supplied fields of a contact. Each field requires its edit permission.
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Contact ID"
// @Param       request body ContactRequest true "Fields to change"
// @Success     200 {object} ContactResponse "Updated contact"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contact, err := h.contacts.UpdateContact(ev, c.Param("id"), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(ev.Identity().ID, access.LogContactUpdate, map[string]any{"contact_id": contact.ID})

	c.JSON(http.StatusOK, maskContact(ev, contact))
}

// DeleteContact removes a contact
// @Summary     Delete contact
// @Description Delete a contact in one of the caller's categories
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Contact ID"
// @Success     200 {object} MessageResponse "Contact deleted"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Contact not found"
// @Router      /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.contacts.DeleteContact(ev, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Append(ev.Identity().ID, access.LogContactDelete, map[string]any{"contact_id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// ExportContacts returns every visible contact as a download
// @Summary     Export contacts
// @Description Export every contact in the caller's categories with fields masked by role
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} ContactResponse "Contacts"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /contacts/export [get]
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	contacts, err := h.contacts.ExportContacts(ev)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="contacts.json"`)
	c.JSON(http.StatusOK, maskContacts(ev, contacts))
}

// GetReportSummary counts contacts per category
// @Summary     Contact report
// @Description Count the caller's visible contacts per category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.CategoryCount "Counts per category"
// @Failure     403 {object} DeniedResponse "Forbidden"
// @Router      /reports/summary [get]
func (h *ContactHandler) GetReportSummary(c *gin.Context) {
	ev, err := evaluatorFor(c, h.perms)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.contacts.CategorySummary(ev)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
