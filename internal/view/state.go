package view

import "errors"

type State string

const (
	Loading  State = "loading"
	Loaded   State = "loaded"
	Empty    State = "empty"
	Error    State = "error"
	NotFound State = "not_found"
)

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

const (
	BrowsePath = "/browse"
	AuthPath   = "/auth"
)

var ErrSettled = errors.New("view already settled")

// Notification is a transient message shown alongside a page.
type Notification struct {
	Variant     string `json:"variant"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Container is the state of one page. It starts in Loading and settles
// exactly once into Loaded, Empty, Error or NotFound.
type Container[T any] struct {
	State        State         `json:"state"`
	Data         T             `json:"data"`
	Notification *Notification `json:"notification,omitempty"`
	// Redirect asks the client to navigate away immediately.
	Redirect string `json:"redirect,omitempty"`
	// Fallback is where the client goes after showing the notification.
	Fallback string `json:"fallback,omitempty"`
}

func New[T any]() *Container[T] {
	return &Container[T]{State: Loading}
}

// Resolve settles the page with data. Zero rows settles as Empty.
func (c *Container[T]) Resolve(data T, rows int) error {
	if c.State != Loading {
		return ErrSettled
	}
	c.Data = data
	if rows == 0 {
		c.State = Empty
	} else {
		c.State = Loaded
	}
	return nil
}

// Fail settles the page as Error with a destructive notification whose
// description is shown to the user as is.
func (c *Container[T]) Fail(title, description, fallback string) error {
	if c.State != Loading {
		return ErrSettled
	}
	c.State = Error
	c.Notification = &Notification{Variant: VariantDestructive, Title: title, Description: description}
	c.Fallback = fallback
	return nil
}

func (c *Container[T]) NotFound(title, fallback string) error {
	if c.State != Loading {
		return ErrSettled
	}
	c.State = NotFound
	c.Notification = &Notification{Variant: VariantDestructive, Title: title}
	c.Fallback = fallback
	return nil
}

// RequireSession settles a page that needs a signed-in user and has none.
func (c *Container[T]) RequireSession() error {
	if c.State != Loading {
		return ErrSettled
	}
	c.State = Error
	c.Notification = &Notification{
		Variant:     VariantDefault,
		Title:       "Sign in required",
		Description: "Please sign in to continue",
	}
	c.Redirect = AuthPath
	return nil
}

// Notify attaches a non-blocking notice without changing state.
func (c *Container[T]) Notify(n Notification) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	c.Notification = &n
}
