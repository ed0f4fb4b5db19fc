package concurrent

import "github.com/juju/errors"

// ErrEmpty is returned when an element is removed from an empty container.
const ErrEmpty = errors.ConstError("container is empty")
