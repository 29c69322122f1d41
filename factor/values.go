package factor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadrics/core"
	"github.com/katalvlaran/quadrics/quadric"
)

// ErrKeyNotFound marks a lookup for a key that holds no variable of the
// requested kind.
var ErrKeyNotFound = errors.New("factor: key not found")

// Values maps keys to current variable estimates. Pose and quadric keys
// live in separate namespaces, mirroring how a solver keeps typed blocks.
//
// Values is not safe for concurrent mutation; evaluation methods on
// BoundingBox only read it.
type Values struct {
	poses    map[Key]core.Pose3
	quadrics map[Key]quadric.Constrained
}

// NewValues returns an empty container.
func NewValues() *Values {
	return &Values{
		poses:    make(map[Key]core.Pose3),
		quadrics: make(map[Key]quadric.Constrained),
	}
}

// InsertPose stores (or replaces) a camera pose under key.
func (v *Values) InsertPose(key Key, pose core.Pose3) {
	v.poses[key] = pose
}

// InsertQuadric stores (or replaces) a quadric landmark under key.
func (v *Values) InsertQuadric(key Key, q quadric.Constrained) {
	v.quadrics[key] = q
}

// PoseAt returns the pose stored under key.
func (v *Values) PoseAt(key Key) (core.Pose3, error) {
	p, ok := v.poses[key]
	if !ok {
		return core.Pose3{}, fmt.Errorf("%w: pose %d", ErrKeyNotFound, key)
	}
	return p, nil
}

// QuadricAt returns the quadric stored under key.
func (v *Values) QuadricAt(key Key) (quadric.Constrained, error) {
	q, ok := v.quadrics[key]
	if !ok {
		return quadric.Constrained{}, fmt.Errorf("%w: quadric %d", ErrKeyNotFound, key)
	}
	return q, nil
}

// HasPose reports whether key holds a pose.
func (v *Values) HasPose(key Key) bool {
	_, ok := v.poses[key]
	return ok
}

// HasQuadric reports whether key holds a quadric.
func (v *Values) HasQuadric(key Key) bool {
	_, ok := v.quadrics[key]
	return ok
}

// Len returns the total number of stored variables.
func (v *Values) Len() int { return len(v.poses) + len(v.quadrics) }
