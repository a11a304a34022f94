// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

import "fmt"

var (
	ErrUnexpectedEOF     = fmt.Errorf("unexpected end of molecule data")
	ErrMalformedEncoding = fmt.Errorf("malformed molecule encoding")
	ErrOffset            = fmt.Errorf("%w: incorrect offset", ErrMalformedEncoding)
	ErrTotalSize         = fmt.Errorf("%w: header size mismatch", ErrMalformedEncoding)
	ErrFieldCount        = fmt.Errorf("%w: unexpected field count", ErrMalformedEncoding)
	ErrItemSize          = fmt.Errorf("%w: incorrect item size", ErrMalformedEncoding)
)
