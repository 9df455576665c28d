////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package services

// Chunk is a half open range [begin, end) of indices into an input sequence.
// It is a view over the sequence, the elements are never copied.
type Chunk struct {
	begin int
	end   int
}

func NewChunk(begin, end int) Chunk {
	return Chunk{begin, end}
}

func (c Chunk) Begin() int {
	return c.begin
}

func (c Chunk) End() int {
	return c.end
}

func (c Chunk) Len() int {
	return c.end - c.begin
}

// Slice returns the part of seq covered by the chunk.
func (c Chunk) Slice(seq []int64) []int64 {
	return seq[c.begin:c.end]
}

// Partition splits [0, size) into numChunks contiguous chunks of size/numChunks
// elements. The last chunk absorbs the remainder, so it can be up to
// numChunks-1 elements longer than the others. When size < numChunks the
// leading chunks are empty. Returns nil if numChunks is not positive.
func Partition(size, numChunks int) []Chunk {
	if numChunks <= 0 {
		return nil
	}

	base := size / numChunks
	chunks := make([]Chunk, numChunks)

	for i := 0; i < numChunks-1; i++ {
		chunks[i] = NewChunk(i*base, (i+1)*base)
	}
	chunks[numChunks-1] = NewChunk((numChunks-1)*base, size)

	return chunks
}
