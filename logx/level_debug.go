// Copyright (c) 2024, The Embla3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug && !release

package logx

import "log/slog"

var defaultUserLevel = slog.LevelDebug
