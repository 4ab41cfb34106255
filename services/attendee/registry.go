package attendee

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookease/models"
)

// Add registers an attendee under its parent user. When an attendee with
// the same case-insensitive name already exists for that parent, the new
// fields are merged into the existing record instead of creating a
// duplicate; the existing ID is returned either way.
func (r *DefaultRegistry) Add(ctx context.Context, data models.Attendee) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return "", err
	}

	for i := range r.attendees {
		existing := &r.attendees[i]
		if existing.ParentUserID == data.ParentUserID &&
			strings.EqualFold(existing.Name, data.Name) {
			mergeFields(existing, data)
			existing.UpdatedAt = r.Now()
			if err := r.persist(ctx); err != nil {
				return "", err
			}
			r.Logger.Debug("attendee merged", zap.String("attendeeId", existing.ID))
			return existing.ID, nil
		}
	}

	now := r.Now()
	data.ID = "attendee-" + uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now
	r.attendees = append(r.attendees, data)
	if err := r.persist(ctx); err != nil {
		return "", err
	}
	r.Logger.Debug("attendee created", zap.String("attendeeId", data.ID))
	return data.ID, nil
}

// AddFromBooking derives an attendee from a completed booking's customer
// snapshot. A missing date of birth is stored as empty rather than
// fabricated; age-dependent callers must treat it as unknown.
func (r *DefaultRegistry) AddFromBooking(ctx context.Context, customer models.Customer, parentUserID string) (string, error) {
	return r.Add(ctx, models.Attendee{
		ParentUserID:     parentUserID,
		Name:             customer.Name,
		Email:            customer.Email,
		Phone:            customer.Phone,
		DateOfBirth:      customer.DateOfBirth,
		EmergencyContact: customer.EmergencyContact,
		MedicalInfo:      customer.MedicalInfo,
		Notes:            customer.Notes,
	})
}

// UpdateAttendee merges partial edits into a record and bumps its
// modification timestamp. Unknown IDs are a no-op.
func (r *DefaultRegistry) UpdateAttendee(ctx context.Context, id string, updates Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	for i := range r.attendees {
		if r.attendees[i].ID != id {
			continue
		}
		applyUpdate(&r.attendees[i], updates)
		r.attendees[i].UpdatedAt = r.Now()
		return r.persist(ctx)
	}
	return nil
}

// Delete removes a record. Idempotent.
func (r *DefaultRegistry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	kept := r.attendees[:0]
	removed := false
	for _, a := range r.attendees {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	r.attendees = kept
	if !removed {
		return nil
	}
	return r.persist(ctx)
}

// Get returns a single attendee by ID.
func (r *DefaultRegistry) Get(ctx context.Context, id string) (models.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return models.Attendee{}, err
	}

	for _, a := range r.attendees {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Attendee{}, ErrAttendeeNotFound
}

// ListByParent returns every attendee owned by the given user, in
// insertion order.
func (r *DefaultRegistry) ListByParent(ctx context.Context, parentUserID string) ([]models.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	var out []models.Attendee
	for _, a := range r.attendees {
		if a.ParentUserID == parentUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ensureLoaded pulls the list from the store on first use. Caller holds
// the lock.
func (r *DefaultRegistry) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	attendees, err := r.Store.Load(ctx)
	if err != nil {
		return err
	}
	r.attendees = attendees
	r.loaded = true
	return nil
}

// persist writes the whole list through to the store. Caller holds the lock.
func (r *DefaultRegistry) persist(ctx context.Context) error {
	if err := r.Store.Save(ctx, r.attendees); err != nil {
		r.Logger.Error("failed to persist attendee registry", zap.Error(err))
		return err
	}
	return nil
}

func mergeFields(dst *models.Attendee, src models.Attendee) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.DateOfBirth != "" {
		dst.DateOfBirth = src.DateOfBirth
	}
	if src.EmergencyContact != "" {
		dst.EmergencyContact = src.EmergencyContact
	}
	if src.MedicalInfo != "" {
		dst.MedicalInfo = src.MedicalInfo
	}
	if src.Allergies != "" {
		dst.Allergies = src.Allergies
	}
	if src.Notes != "" {
		dst.Notes = src.Notes
	}
}

func applyUpdate(dst *models.Attendee, u Update) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.Email != nil {
		dst.Email = *u.Email
	}
	if u.Phone != nil {
		dst.Phone = *u.Phone
	}
	if u.DateOfBirth != nil {
		dst.DateOfBirth = *u.DateOfBirth
	}
	if u.EmergencyContact != nil {
		dst.EmergencyContact = *u.EmergencyContact
	}
	if u.MedicalInfo != nil {
		dst.MedicalInfo = *u.MedicalInfo
	}
	if u.Allergies != nil {
		dst.Allergies = *u.Allergies
	}
	if u.Notes != nil {
		dst.Notes = *u.Notes
	}
}
