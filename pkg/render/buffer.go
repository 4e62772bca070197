package render

// OpKind identifies a recorded surface call.
type OpKind int

const (
	OpDrawImage OpKind = iota
	OpSave
	OpRestore
	OpTranslate
	OpRotate
	OpSetAlpha
)

// Op is a single recorded surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	Image Image
	X, Y  float64
	W, H  float64
	Angle float64
	Alpha float64
}

// CommandBuffer records draw calls made during a tick so they can be
// replayed onto the real screen in the Draw pass.
type CommandBuffer struct {
	width, height float64
	ops           []Op
}

var _ Surface = (*CommandBuffer)(nil)

// NewCommandBuffer creates a buffer for a logical surface of the given size.
func NewCommandBuffer(width, height float64) *CommandBuffer {
	return &CommandBuffer{
		width:  width,
		height: height,
		ops:    make([]Op, 0, 256),
	}
}

func (b *CommandBuffer) Width() float64  { return b.width }
func (b *CommandBuffer) Height() float64 { return b.height }

func (b *CommandBuffer) DrawImage(img Image, x, y, w, h float64) {
	b.ops = append(b.ops, Op{Kind: OpDrawImage, Image: img, X: x, Y: y, W: w, H: h})
}

func (b *CommandBuffer) Save() {
	b.ops = append(b.ops, Op{Kind: OpSave})
}

func (b *CommandBuffer) Restore() {
	b.ops = append(b.ops, Op{Kind: OpRestore})
}

func (b *CommandBuffer) Translate(x, y float64) {
	b.ops = append(b.ops, Op{Kind: OpTranslate, X: x, Y: y})
}

func (b *CommandBuffer) Rotate(theta float64) {
	b.ops = append(b.ops, Op{Kind: OpRotate, Angle: theta})
}

func (b *CommandBuffer) SetAlpha(a float64) {
	b.ops = append(b.ops, Op{Kind: OpSetAlpha, Alpha: a})
}

// Ops returns the calls recorded since the last Reset.
func (b *CommandBuffer) Ops() []Op {
	return b.ops
}

// Draws returns only the recorded DrawImage calls.
func (b *CommandBuffer) Draws() []Op {
	var draws []Op
	for _, op := range b.ops {
		if op.Kind == OpDrawImage {
			draws = append(draws, op)
		}
	}
	return draws
}

// Reset drops recorded calls, keeping the backing array.
func (b *CommandBuffer) Reset() {
	b.ops = b.ops[:0]
}

// Replay issues every recorded call onto dst in order.
func (b *CommandBuffer) Replay(dst Surface) {
	for _, op := range b.ops {
		switch op.Kind {
		case OpDrawImage:
			dst.DrawImage(op.Image, op.X, op.Y, op.W, op.H)
		case OpSave:
			dst.Save()
		case OpRestore:
			dst.Restore()
		case OpTranslate:
			dst.Translate(op.X, op.Y)
		case OpRotate:
			dst.Rotate(op.Angle)
		case OpSetAlpha:
			dst.SetAlpha(op.Alpha)
		}
	}
}
