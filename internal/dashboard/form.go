// Package dashboard holds the form controllers behind the admin terminal
// dashboard. A form validates a draft, calls the admin API and reports the
// outcome through its collaborators.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"toko-admin/internal/validation"
)

// Toasts shown for any failed request. The cause is never surfaced.
const (
	msgSubmitFailed = "Gagal mengubah data toko"
	msgDeleteFailed = "Gagal menghapus toko"
)

var (
	// ErrBusy is returned when a request of the form is already in flight.
	ErrBusy = errors.New("form is busy")
	// ErrNotEditing is returned by Delete on a form in create mode.
	ErrNotEditing = errors.New("delete needs an existing entity")
)

// API sends requests to the admin API. Any non-2xx answer is an error.
type API interface {
	Post(ctx context.Context, path string, body interface{}) error
	Patch(ctx context.Context, path string, body interface{}) error
	Delete(ctx context.Context, path string) error
}

// Navigator refreshes server data and moves to another dashboard page.
type Navigator interface {
	Refresh(ctx context.Context)
	Push(ctx context.Context, path string)
}

// Notifier shows toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// InvalidError lists every field of a draft that failed validation.
type InvalidError struct {
	Fields []validation.FieldError
}

func (e *InvalidError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("field '%s' failed on the '%s' tag", f.Field, f.Tag))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Resource describes the entity a form edits.
type Resource struct {
	Name    string // e.g. "Category"
	Path    string // collection segment, e.g. "categories"
	Created string
	Updated string
	Deleted string
}

// Deps are the collaborators shared by every form.
type Deps struct {
	API       API
	Navigator Navigator
	Notifier  Notifier
	Confirmer Confirmer
}

// Form is the controller of one create or edit form. The draft, loading
// and open flags belong to the form and are safe for concurrent use.
type Form[T any] struct {
	resource Resource
	storeID  string
	entityID string
	validate func(T) []validation.FieldError
	deps     Deps

	mu      sync.Mutex
	draft   T
	loading bool
	open    bool
}

func newForm[T any](res Resource, storeID, entityID string, draft T, validate func(T) []validation.FieldError, deps Deps) *Form[T] {
	return &Form[T]{
		resource: res,
		storeID:  storeID,
		entityID: entityID,
		validate: validate,
		deps:     deps,
		draft:    draft,
	}
}

// Editing reports whether the form edits an existing entity.
func (f *Form[T]) Editing() bool { return f.entityID != "" }

func (f *Form[T]) Title() string {
	if f.Editing() {
		return "Edit " + f.resource.Name
	}
	return "Create " + f.resource.Name
}

func (f *Form[T]) Description() string {
	if f.Editing() {
		return "Edit " + f.resource.Name + " Toko"
	}
	return "Create new " + f.resource.Name
}

func (f *Form[T]) Action() string {
	if f.Editing() {
		return "Update " + f.resource.Name
	}
	return "Create " + f.resource.Name
}

// Draft returns the current values of the form.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the values of the form.
func (f *Form[T]) SetDraft(draft T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Loading reports whether a request is in flight.
func (f *Form[T]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Open reports whether the delete confirmation is showing.
func (f *Form[T]) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Validate returns every violation of the current draft.
func (f *Form[T]) Validate() []validation.FieldError {
	return f.validate(f.Draft())
}

func (f *Form[T]) listPath() string {
	return "/" + f.storeID + "/" + f.resource.Path
}

func (f *Form[T]) apiPath() string {
	path := "/api" + f.listPath()
	if f.Editing() {
		path += "/" + f.entityID
	}
	return path
}

func (f *Form[T]) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loading {
		return false
	}
	f.loading = true
	return true
}

func (f *Form[T]) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
}

// Submit validates the draft and sends it: PATCH in edit mode, POST
// otherwise. The draft is kept whatever the outcome.
func (f *Form[T]) Submit(ctx context.Context) error {
	draft := f.Draft()
	if fields := f.validate(draft); len(fields) > 0 {
		return &InvalidError{Fields: fields}
	}
	if !f.begin() {
		return ErrBusy
	}
	defer f.finish()

	var err error
	if f.Editing() {
		err = f.deps.API.Patch(ctx, f.apiPath(), draft)
	} else {
		err = f.deps.API.Post(ctx, f.apiPath(), draft)
	}
	if err != nil {
		f.deps.Notifier.Error(msgSubmitFailed)
		return fmt.Errorf("failed to save %s: %w", strings.ToLower(f.resource.Name), err)
	}

	f.deps.Navigator.Refresh(ctx)
	f.deps.Navigator.Push(ctx, f.listPath())
	if f.Editing() {
		f.deps.Notifier.Success(f.resource.Updated)
	} else {
		f.deps.Notifier.Success(f.resource.Created)
	}
	return nil
}

// Delete asks for confirmation and removes the edited entity. A declined
// confirmation sends nothing and returns nil.
func (f *Form[T]) Delete(ctx context.Context) error {
	if !f.Editing() {
		return ErrNotEditing
	}

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrBusy
	}
	f.open = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.open = false
		f.mu.Unlock()
	}()

	confirmed, err := f.deps.Confirmer.Confirm(ctx, "Are you sure?", "This action cannot be undone.")
	if err != nil {
		return fmt.Errorf("failed to confirm delete: %w", err)
	}
	if !confirmed {
		return nil
	}

	if !f.begin() {
		return ErrBusy
	}
	defer f.finish()

	if err := f.deps.API.Delete(ctx, f.apiPath()); err != nil {
		f.deps.Notifier.Error(msgDeleteFailed)
		return fmt.Errorf("failed to delete %s: %w", strings.ToLower(f.resource.Name), err)
	}

	f.deps.Navigator.Refresh(ctx)
	f.deps.Navigator.Push(ctx, f.listPath())
	f.deps.Notifier.Success(f.resource.Deleted)
	return nil
}
