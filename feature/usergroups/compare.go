package usergroups

import (
	"sort"
	"strings"

	"state-reconciler/feature/usergroups/models"
)

// Key returns the reconciliation key for a group. The provider
// canonicalizes handles to lowercase, so we key the same way.
func Key(group models.Group) string {
	return strings.ToLower(group.Handle)
}

// GroupsEqual reports whether a live and a declared group are converged.
// The provider-assigned ID is ignored; handles are compared
// case-insensitively; members and channels are compared as sets.
func GroupsEqual(current, desired models.Group) bool {
	if !strings.EqualFold(current.Handle, desired.Handle) {
		return false
	}
	if current.Description != desired.Description {
		return false
	}
	if current.Broadcast != desired.Broadcast {
		return false
	}
	return sameSet(current.Members, desired.Members) &&
		sameSet(current.Channels, desired.Channels)
}

// sameSet compares two string slices as unordered sets.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string{}, a...)
	bs := append([]string{}, b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
