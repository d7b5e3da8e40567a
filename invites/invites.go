// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package invites

import (
	"strings"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/validate"
)

// ValidatorFunc is an email syntax predicate.
type ValidatorFunc func(string) bool

// Set is a deduplicated, validated collection of invitee email addresses.
// Addresses are normalized to lower-case and trimmed; uniqueness is by
// exact string equality after normalization. Insertion order is preserved.
type Set struct {
	validate ValidatorFunc
	emails   []string
}

// NewSet creates an empty invite set. A nil validator defaults to the
// standard email syntax check.
func NewSet(v ValidatorFunc) *Set {
	if v == nil {
		v = validate.Email
	}
	return &Set{validate: v}
}

// Normalize lower-cases and trims an email address.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Add validates, normalizes, and appends an address. It fails with
// INVITE_INVALID_EMAIL on a syntax error and INVITE_DUPLICATE_EMAIL when
// the normalized address is already present.
func (s *Set) Add(email string) error {
	normalized := Normalize(email)

	if !s.validate(normalized) {
		return apperrors.NewField(apperrors.CodeInviteInvalidEmail, "email", "invalid email address")
	}
	if s.Has(normalized) {
		return apperrors.NewField(apperrors.CodeInviteDuplicateEmail, "email", "email already added")
	}

	s.emails = append(s.emails, normalized)
	return nil
}

// Remove filters the address out by exact normalized match. Removing a
// non-member is a no-op.
func (s *Set) Remove(email string) {
	normalized := Normalize(email)

	kept := s.emails[:0]
	for _, e := range s.emails {
		if e != normalized {
			kept = append(kept, e)
		}
	}
	s.emails = kept
}

// Has reports whether the normalized address is in the set.
func (s *Set) Has(email string) bool {
	normalized := Normalize(email)
	for _, e := range s.emails {
		if e == normalized {
			return true
		}
	}
	return false
}

// Emails returns the addresses in insertion order.
func (s *Set) Emails() []string {
	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out
}

// Len returns the number of addresses in the set.
func (s *Set) Len() int {
	return len(s.emails)
}
