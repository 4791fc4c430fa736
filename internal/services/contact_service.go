package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/models"
	"rolecrm/internal/pagination"
)

// contactService stores contacts and enforces the evaluator's verdicts:
// action flags gate operations, field flags gate attributes, and the
// identity's categories scope which contacts exist for the caller.
type contactService struct {
	db      *gorm.DB
	latency time.Duration
}

// NewContactService creates a new ContactServicer. latency simulates the
// remote contact backend on create.
func NewContactService(db *gorm.DB, latency time.Duration) ContactServicer {
	return &contactService{db: db, latency: latency}
}

// checkFields rejects any supplied attribute the caller may not edit.
func checkFields(ev access.Evaluator, input ContactInput, creating bool) error {
	supplied := map[string]bool{
		access.FieldEmail:   input.Email != nil && (!creating || *input.Email != ""),
		access.FieldPhone:   input.Phone != nil && (!creating || *input.Phone != ""),
		access.FieldCompany: input.Company != nil && (!creating || *input.Company != ""),
		access.FieldNotes:   input.Notes != nil && (!creating || *input.Notes != ""),
		access.FieldTags:    input.SetTags && (!creating || len(input.Tags) > 0),
	}
	for _, field := range access.ContactFields {
		if supplied[field] && !ev.CanEdit(field) {
			return apperrors.WithMessage(apperrors.ErrFieldNotEditable, "You are not allowed to edit "+field)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// CreateContact adds a contact in one of the caller's categories
func (s *contactService) CreateContact(ctx context.Context, ev access.Evaluator, input ContactInput) (*models.Contact, error) {
	identity := ev.Identity()
	if identity == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !ev.CanAccess(access.ActionCreateContact) {
		return nil, apperrors.ErrForbidden
	}

	name := deref(input.Name)
	category := deref(input.Category)
	if name == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and category are required")
	}
	if !ev.HasCategory(category) {
		return nil, apperrors.ErrCategoryNotAllowed
	}
	if err := checkFields(ev, input, true); err != nil {
		return nil, err
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	contact := &models.Contact{
		OwnerID:  identity.ID,
		Name:     name,
		Email:    strings.ToLower(deref(input.Email)),
		Phone:    deref(input.Phone),
		Company:  deref(input.Company),
		Category: category,
		Notes:    deref(input.Notes),
		Tags:     tags,
	}

	if err := s.db.Create(contact).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contact, nil
}

// ListContacts returns the contacts in the caller's categories, newest first
func (s *contactService) ListContacts(ev access.Evaluator, page pagination.PageRequest) (*pagination.PageResponse[models.Contact], error) {
	page.Defaults()

	identity := ev.Identity()
	if identity == nil || len(identity.AllowedCategories) == 0 {
		resp := pagination.NewPageResponse[models.Contact](nil, page.Page, page.PageSize, 0)
		return &resp, nil
	}

	query := s.db.Model(&models.Contact{}).Where("category IN ?", identity.AllowedCategories)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var contacts []models.Contact
	if err := query.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(contacts, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetContact retrieves a contact the caller can see. Contacts outside the
// caller's categories are reported as missing.
func (s *contactService) GetContact(ev access.Evaluator, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ev.HasCategory(contact.Category) {
		return nil, apperrors.ErrContactNotFound
	}
	return &contact, nil
}

// UpdateContact applies the supplied attributes
func (s *contactService) UpdateContact(ev access.Evaluator, id string, input ContactInput) (*models.Contact, error) {
	if !ev.CanAccess(access.ActionEditContact) {
		return nil, apperrors.ErrForbidden
	}

	contact, err := s.GetContact(ev, id)
	if err != nil {
		return nil, err
	}
	if err := checkFields(ev, input, false); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := deref(input.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
		}
		contact.Name = name
	}
	if input.Category != nil {
		category := deref(input.Category)
		if !ev.HasCategory(category) {
			return nil, apperrors.ErrCategoryNotAllowed
		}
		contact.Category = category
	}
	if input.Email != nil {
		contact.Email = strings.ToLower(deref(input.Email))
	}
	if input.Phone != nil {
		contact.Phone = deref(input.Phone)
	}
	if input.Company != nil {
		contact.Company = deref(input.Company)
	}
	if input.Notes != nil {
		contact.Notes = deref(input.Notes)
	}
	if input.SetTags {
		contact.Tags = input.Tags
		if contact.Tags == nil {
			contact.Tags = []string{}
		}
	}

	if err := s.db.Save(contact).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contact, nil
}

// DeleteContact removes a contact the caller can see
func (s *contactService) DeleteContact(ev access.Evaluator, id string) error {
	if !ev.CanAccess(access.ActionDeleteContact) {
		return apperrors.ErrForbidden
	}

	contact, err := s.GetContact(ev, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(contact).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ExportContacts returns every contact the caller can see, newest first.
func (s *contactService) ExportContacts(ev access.Evaluator) ([]models.Contact, error) {
	if !ev.CanAccess(access.ActionExportContacts) {
		return nil, apperrors.ErrForbidden
	}

	identity := ev.Identity()
	if len(identity.AllowedCategories) == 0 {
		return []models.Contact{}, nil
	}

	var contacts []models.Contact
	if err := s.db.Where("category IN ?", identity.AllowedCategories).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contacts, nil
}

// CategorySummary counts visible contacts per category. Every category
// the caller holds is listed, including empty ones.
func (s *contactService) CategorySummary(ev access.Evaluator) ([]CategoryCount, error) {
	if !ev.CanAccess(access.ActionViewReports) {
		return nil, apperrors.ErrForbidden
	}

	identity := ev.Identity()
	summary := make([]CategoryCount, 0, len(identity.AllowedCategories))
	if len(identity.AllowedCategories) == 0 {
		return summary, nil
	}

	var rows []CategoryCount
	err := s.db.Model(&models.Contact{}).
		Select("category, COUNT(*) AS count").
		Where("category IN ?", identity.AllowedCategories).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	for _, category := range identity.AllowedCategories {
		summary = append(summary, CategoryCount{Category: category, Count: counts[category]})
	}
	return summary, nil
}
