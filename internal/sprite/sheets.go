package sprite

// Player walk cycle facing right. The left bank is the mirror image.
var playerRight = []Art{
	NewArt(` O>`, `/|\`, `/ \`),
	NewArt(` O>`, `/|\`, ` |\`),
	NewArt(` O>`, `/|\`, ` | `),
	NewArt(` O>`, `/|\`, `/| `),
	NewArt(` O>`, `/|\`, `/ \`),
	NewArt(` O>`, `-|\`, ` |\`),
}

// PlayerWalkFrames is the length of one walk cycle.
const PlayerWalkFrames = 6

// PlayerFrames returns the 12 player frames sized w×h:
// 0-5 walk left, 6-11 walk right.
func PlayerFrames(w, h int) []*Frame {
	frames := make([]*Frame, 0, 2*PlayerWalkFrames)
	for _, art := range playerRight {
		frames = append(frames, NewFrame(art.Mirror(), w, h))
	}
	for _, art := range playerRight {
		frames = append(frames, NewFrame(art, w, h))
	}
	return frames
}

var mobIdle = []Art{
	NewArt(`\v/`, ` V `),
	NewArt(`/v\`, ` ^ `),
}

// MobFrames returns the two idle frames for each facing, sized size×size.
// Index [facingRight][frame].
func MobFrames(size int) [2][]*Frame {
	var out [2][]*Frame
	for _, art := range mobIdle {
		out[0] = append(out[0], NewFrame(art.Mirror(), size, size))
		out[1] = append(out[1], NewFrame(art, size, size))
	}
	return out
}

// CloudShape is a cloud art with its unscaled pixel size.
type CloudShape struct {
	Art  Art
	W, H int
}

// Clouds are the background variants.
var Clouds = []CloudShape{
	{Art: NewArt(`  .--.  `, `(      )`, ` '----' `), W: 160, H: 80},
	{Art: NewArt(`   .-.    `, ` (     ). `, `(________)`), W: 200, H: 100},
	{Art: NewArt(` .--. .-. `, `(    '   )`, ` '-------'`), W: 240, H: 90},
}

// Pickup art.
var (
	Boost = NewArt(`/\`, `||`)
	Coin  = NewArt(`($)`)
)

// Platform tiles, top row then body.
var (
	Grass = NewArt(`""""""`, `######`)
	Stone = NewArt(`======`, `[][][]`)
)
