/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rsa

import "fmt"

// A SecurityProfile names a target size for the modulus. Weak profiles are
// still generated; the flag is only surfaced so callers can warn about them.
type SecurityProfile struct {
	Name   string
	Digits int
	Weak   bool
}

var profiles = []SecurityProfile{
	{Name: "RSA-2048", Digits: 617},
	{Name: "RSA-1536", Digits: 463},
	{Name: "RSA-1024", Digits: 309},
	{Name: "RSA-896", Digits: 270},
	{Name: "RSA-768", Digits: 232, Weak: true},
	{Name: "RSA-704", Digits: 212, Weak: true},
	{Name: "RSA-576", Digits: 174, Weak: true},
}

// UnknownProfileError is returned for profile names outside the table.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown security profile: %s", e.Name)
}

// Profiles returns the supported profiles, strongest first.
func Profiles() []SecurityProfile {
	return append([]SecurityProfile(nil), profiles...)
}

// SelectProfile looks up a profile by name. There is no default profile.
func SelectProfile(name string) (SecurityProfile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return SecurityProfile{}, &UnknownProfileError{Name: name}
}
