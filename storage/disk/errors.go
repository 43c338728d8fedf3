package disk

import "errors"

// ErrNoSuchPage is returned (possibly wrapped) by ReadPage when pageNo was
// never allocated or has already been deleted.
var ErrNoSuchPage = errors.New("disk: no such page")
