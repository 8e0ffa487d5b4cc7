package model

// NoticeKind identifies a dismiss-only message shown to the user
type NoticeKind string

const (
	NoticePermissionDenied NoticeKind = "permission_denied"
	NoticeImageSaveFailed  NoticeKind = "image_save_failed"
	NoticeImageRequired    NoticeKind = "image_required"

	// Informational taps on the start screen
	NoticeAppleTapped  NoticeKind = "apple_tapped"
	NoticeSignUpTapped NoticeKind = "sign_up_tapped"
)

// String returns the string representation of NoticeKind
func (nk NoticeKind) String() string {
	return string(nk)
}

// IsError returns true for notices caused by a failed user action
func (nk NoticeKind) IsError() bool {
	return nk == NoticePermissionDenied || nk == NoticeImageSaveFailed || nk == NoticeImageRequired
}
