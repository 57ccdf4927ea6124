package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowerCluster_Lifecycle(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	c := w.NewFlowerCluster()
	require.Equal(t, ClusterGrowing, c.Phase)
	assert.Equal(t, ClusterInitialSize, c.Size)
	assert.GreaterOrEqual(t, c.TargetSize, MinClusterSize)
	assert.Less(t, c.TargetSize, MaxClusterSize)
	assert.GreaterOrEqual(t, len(c.Charms), 5)
	assert.LessOrEqual(t, len(c.Charms), 11)

	frames := 0
	for c.Phase == ClusterGrowing {
		c.Step()
		frames++
		require.Less(t, frames, 1000)
	}
	require.Equal(t, ClusterBloomed, c.Phase)
	bloomedSize := c.Size
	assert.InDelta(t, c.TargetSize, bloomedSize, 1)

	for c.Phase == ClusterBloomed {
		prevAlpha := c.Alpha
		c.Step()
		assert.Equal(t, bloomedSize, c.Size)
		assert.LessOrEqual(t, c.Alpha, prevAlpha)
		assert.GreaterOrEqual(t, c.Alpha, 0.0)
		frames++
		require.Less(t, frames, 1000)
	}
	assert.Equal(t, ClusterDone, c.Phase)
	assert.Equal(t, 0.0, c.Alpha)

	// Done is final.
	c.Step()
	assert.Equal(t, ClusterDone, c.Phase)
	assert.Equal(t, bloomedSize, c.Size)
}

func TestFlowerCluster_CharmsOrbit(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	c := w.NewFlowerCluster()
	before := c.CharmPos(0)
	dist := c.Charms[0].Dist
	c.Charms[0].Spin = 0.01
	c.Step()
	after := c.CharmPos(0)
	assert.NotEqual(t, before, after)
	assert.InDelta(t, dist, after.DistTo(c.Pos), 1e-9)
}

func TestStepClusters_SpawnEveryTenFrames(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	toWishInput(t, &w)
	require.Empty(t, w.Clusters)

	stepN(&w, 100)
	assert.InDelta(t, 10, len(w.Clusters), 1)
}

func TestStepClusters_Cap(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	for range MaxClusters {
		w.Clusters = append(w.Clusters, w.NewFlowerCluster())
	}
	w.FrameIdx = ClusterSpawnInterval
	w.StepClusters()
	assert.Len(t, w.Clusters, MaxClusters)
}

func TestStepClusters_RemovesDone(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	c := w.NewFlowerCluster()
	c.Phase = ClusterBloomed
	c.Alpha = 1
	w.Clusters = append(w.Clusters, c, w.NewFlowerCluster())
	w.FrameIdx = 1
	w.StepClusters()
	require.Len(t, w.Clusters, 1)
	assert.Equal(t, ClusterGrowing, w.Clusters[0].Phase)
}

func TestWishInput_EnterClearsClusters(t *testing.T) {
	w := newTestWorld(4, 1920, 1080)
	w.Clusters = append(w.Clusters, w.NewFlowerCluster())
	toWishInput(t, &w)
	assert.Empty(t, w.Clusters)
}
