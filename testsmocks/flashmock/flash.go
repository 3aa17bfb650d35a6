/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package flashmock

import (
	"io"

	"github.com/stretchr/testify/mock"
)

type FirmwareWriterMock struct {
	mock.Mock
}

func (fm *FirmwareWriterMock) Begin(size int64) (io.Writer, error) {
	args := fm.Called(size)

	w := args.Get(0)
	if w == nil {
		return nil, args.Error(1)
	}

	return w.(io.Writer), args.Error(1)
}

func (fm *FirmwareWriterMock) Commit() error {
	args := fm.Called()
	return args.Error(0)
}

func (fm *FirmwareWriterMock) Abort() {
	fm.Called()
}
