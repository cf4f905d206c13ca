package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize covers a full field snapshot without growing
const responseBufferSize = 1024

var responseBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, responseBufferSize)) },
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless a large response grew it
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*responseBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
