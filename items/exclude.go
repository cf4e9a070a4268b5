// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

// Exclude names at most one group that an item skips when it notifies
// its groups of a position change. The zero value, [NoExclude],
// excludes nothing.
//
// A group moving all of its members passes Except(itself) to each
// member mutator and then calls its own [Group.UpdateCenter] once.
// Any code that batch-moves the members of a group must follow the
// same pattern.
type Exclude struct {
	group *Group
}

// NoExclude notifies every group.
var NoExclude = Exclude{}

// Except returns an [Exclude] that skips g. Except(nil) is [NoExclude].
func Except(g *Group) Exclude {
	return Exclude{group: g}
}

// Excludes returns whether g is the excluded group.
func (ex Exclude) Excludes(g *Group) bool {
	return ex.group != nil && ex.group == g
}
