package helpers

// This joins the printed output of many files into one buffer. It measures
// exactly how big the buffer should be and then allocates once, so printing a
// large glob of inputs to stdout doesn't repeatedly reallocate.
type Joiner struct {
	chunks   []joinerChunk
	length   uint32
	lastByte byte
}

type joinerChunk struct {
	text   string
	data   []byte
	offset uint32
}

func (j *Joiner) AddString(data string) {
	if len(data) > 0 {
		j.lastByte = data[len(data)-1]
	}
	j.chunks = append(j.chunks, joinerChunk{text: data, offset: j.length})
	j.length += uint32(len(data))
}

func (j *Joiner) AddBytes(data []byte) {
	if len(data) > 0 {
		j.lastByte = data[len(data)-1]
	}
	j.chunks = append(j.chunks, joinerChunk{data: data, offset: j.length})
	j.length += uint32(len(data))
}

func (j *Joiner) Length() uint32 {
	return j.length
}

func (j *Joiner) EnsureNewlineAtEnd() {
	if j.length > 0 && j.lastByte != '\n' {
		j.AddString("\n")
	}
}

// Adds a "// path" banner so concatenated outputs stay attributable. Nothing
// is added before the first file other than the banner itself.
func (j *Joiner) AddFileBanner(path string) {
	if j.length > 0 {
		j.EnsureNewlineAtEnd()
		j.AddString("\n")
	}
	j.AddString("// ")
	j.AddString(path)
	j.AddString("\n")
}

func (j *Joiner) Done() []byte {
	if len(j.chunks) == 1 && j.chunks[0].data != nil {
		// No need to allocate if there was only a single byte array written
		return j.chunks[0].data
	}
	buffer := make([]byte, j.length)
	for _, item := range j.chunks {
		if item.data != nil {
			copy(buffer[item.offset:], item.data)
		} else {
			copy(buffer[item.offset:], item.text)
		}
	}
	return buffer
}
