package profile

import "errors"

var (
	ErrInvalidUID      = errors.New("invalid profile uid")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoMaterials     = errors.New("completion carries no materials")
)
