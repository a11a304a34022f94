// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the ckb-txdump tool.

package molutils

// Option is an optional value. An empty span means none.
//
// Unwrap does not check for none: callers test IsNone first. Unwrapping a
// none value yields a view over an empty cursor.
type Option[T View] struct {
	cur  Cursor
	wrap func(Cursor) T
}

func NewOption[T View](cur Cursor, wrap func(Cursor) T) Option[T] {
	return Option[T]{
		cur:  cur,
		wrap: wrap,
	}
}

func (o Option[T]) Cursor() Cursor {
	return o.cur
}

func (o Option[T]) Kind() Kind {
	return KindOption
}

func (o Option[T]) IsNone() bool {
	return o.cur.size == 0
}

func (o Option[T]) IsSome() bool {
	return o.cur.size != 0
}

func (o Option[T]) Unwrap() T {
	return o.wrap(o.cur)
}

func (o Option[T]) Verify(compatible bool) error {
	if o.IsNone() {
		return nil
	}
	return o.wrap(o.cur).Verify(compatible)
}
