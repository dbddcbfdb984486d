// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides host byte order selection.
//
// Known ports resolve Little as a build-time constant via build tags, so
// branches on it are removed by the compiler. Other ports fall back to a
// portable detection that runs once during package initialization.
package bo
