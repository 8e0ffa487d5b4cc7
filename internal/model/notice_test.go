package model

import "testing"

func TestNoticeKind_IsError(t *testing.T) {
	tests := []struct {
		kind     NoticeKind
		expected bool
	}{
		{NoticePermissionDenied, true},
		{NoticeImageSaveFailed, true},
		{NoticeImageRequired, true},
		{NoticeAppleTapped, false},
		{NoticeSignUpTapped, false},
	}

	for _, test := range tests {
		if test.kind.IsError() != test.expected {
			t.Errorf("NoticeKind(%s).IsError() = %v, expected %v", test.kind, test.kind.IsError(), test.expected)
		}
	}
}
