package internal

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 0.0, o.Tolerance)
	assert.Equal(t, DuplicateMerge, o.Duplicates)
	assert.Equal(t, OrderSpatial, o.Order)
	assert.Equal(t, AdaptivePredicates{}, o.Predicates)
	assert.NotNil(t, o.Logger)
	assert.Empty(t, o.Holes)

	logger, _ := test.NewNullLogger()
	o = NewOptions(
		WithTolerance(-1),
		WithDuplicatePolicy(DuplicateReject),
		WithOrder(OrderInput),
		WithPredicates(nil),
		WithHoles([]VertexID{1, 2, 3}),
		WithHoles([]VertexID{4, 5, 6}, []VertexID{7, 8, 9}),
		WithLogger(logger),
	)
	assert.Equal(t, 0.0, o.Tolerance)
	assert.Equal(t, DuplicateReject, o.Duplicates)
	assert.Equal(t, OrderInput, o.Order)
	assert.Equal(t, AdaptivePredicates{}, o.Predicates)
	assert.Len(t, o.Holes, 3)
	assert.Same(t, logger, o.Logger)

	o = NewOptions(WithPredicates(ExactPredicates{}), WithTolerance(0.25))
	assert.Equal(t, ExactPredicates{}, o.Predicates)
	assert.Equal(t, 0.25, o.Tolerance)
}

func TestInsertionOrder(t *testing.T) {
	points := unitSquare()
	ids := []VertexID{0, 1, 2, 3}
	center := boundsCenter(points, ids)
	assert.Equal(t, Point{X: 0.5, Y: 0.5}, center)
	assert.Equal(t, Point{}, boundsCenter(points, nil))

	// Equidistant, so x then y decides
	assert.Equal(t, []VertexID{0, 3, 1, 2}, insertionOrder(OrderSpatial, points, ids, center))
	assert.Equal(t, ids, insertionOrder(OrderInput, points, ids, center))

	t.Run("depends only on coordinates", func(t *testing.T) {
		points := randomPoints(21, 50, 10)
		ids := make([]VertexID, len(points))
		for i := range ids {
			ids[i] = VertexID(i)
		}
		center := boundsCenter(points, ids)
		expected := spatialOrder(points, ids, center)

		// Same points, reversed ids
		shuffled := make([]Point, len(points))
		for i, p := range points {
			shuffled[len(points)-1-i] = p
		}
		actual := spatialOrder(shuffled, ids, boundsCenter(shuffled, ids))
		for i := range expected {
			assert.Equal(t, points[expected[i]], shuffled[actual[i]])
		}

		// The input isn't reordered
		assert.Equal(t, VertexID(0), ids[0])
	})
}
