package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRotationIsNoOp(t *testing.T) {
	v := [3]float32{1, 2, 3}
	r := Rotate(Identity, v)
	assert.InDelta(t, v[0], r[0], 1e-5)
	assert.InDelta(t, v[1], r[1], 1e-5)
	assert.InDelta(t, v[2], r[2], 1e-5)
}

func TestFromYPRZeroIsIdentity(t *testing.T) {
	q := FromYPR(0, 0, 0)
	v := [3]float32{0, 0, 1}
	r := Rotate(q, v)
	assert.InDelta(t, 0, r[0], 1e-5)
	assert.InDelta(t, 0, r[1], 1e-5)
	assert.InDelta(t, 1, r[2], 1e-5)
}

func TestFromYPRPitch90RotatesForwardToUp(t *testing.T) {
	// A +90 degree (bow-up) pitch about the y (starboard) axis carries
	// the forward unit vector (1,0,0) onto the up axis (0,0,-1) in this
	// z-down frame, just as it tilts the down axis forward.
	q := FromYPR(0, 90, 0)
	r := Rotate(q, [3]float32{1, 0, 0})
	assert.InDelta(t, 0, r[0], 1e-4)
	assert.InDelta(t, 0, r[1], 1e-4)
	assert.InDelta(t, -1, r[2], 1e-4)
}

func TestComposeMatchesSequentialApplication(t *testing.T) {
	a := FromYPR(10, 0, 0)
	b := FromYPR(0, 20, 0)

	composed := Compose(a, b)
	v := [3]float32{1, 0, 0}

	direct := Rotate(composed, v)
	sequential := Rotate(a, Rotate(b, v))

	assert.InDelta(t, sequential[0], direct[0], 1e-4)
	assert.InDelta(t, sequential[1], direct[1], 1e-4)
	assert.InDelta(t, sequential[2], direct[2], 1e-4)
}
