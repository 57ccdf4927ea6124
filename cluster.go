package main

import "math"

const (
	MaxClusters          = 50
	MinClusterSize       = 200.0
	MaxClusterSize       = 400.0
	ClusterInitialSize   = 5.0
	ClusterSpawnInterval = 10
	ClusterGrowLerp      = 0.09
	ClusterFadeInLerp    = 0.10
	ClusterFadeOut       = 3.0
)

type ClusterPhase int64

const (
	ClusterGrowing ClusterPhase = iota
	ClusterBloomed
	ClusterDone
)

// Charm is a small lucky charm orbiting a FlowerCluster.
type Charm struct {
	Angle float64
	Dist  float64
	Spin  float64
	Size  float64
}

// FlowerCluster is a lucky charm that blooms behind the wish textbox. It
// grows to its target size while fading in, then fades out without changing
// size. Once faded out it is done and gets removed; it never grows again.
type FlowerCluster struct {
	Pos        Pt
	Size       float64
	TargetSize float64
	Alpha      float64
	Phase      ClusterPhase
	Tint       int
	Charms     []Charm
}

func (w *World) NewFlowerCluster() (c FlowerCluster) {
	c.Pos = Pt{w.RFloat(0, w.Width), w.RFloat(0, w.Height)}
	c.Size = ClusterInitialSize
	c.TargetSize = w.RFloat(MinClusterSize, MaxClusterSize)
	c.Tint = w.RIndex(len(Palette))
	nCharms := int(math.Floor(w.RFloat(5, 12)))
	c.Charms = make([]Charm, nCharms)
	for i := range c.Charms {
		c.Charms[i] = Charm{
			Angle: w.RAngle(),
			Dist:  w.RFloat(c.TargetSize*0.2, c.TargetSize*0.5),
			Spin:  w.RFloat(-0.02, 0.02),
			Size:  w.RFloat(30, 80),
		}
	}
	return
}

func (c *FlowerCluster) Step() {
	switch c.Phase {
	case ClusterGrowing:
		c.Size = Lerp(c.Size, c.TargetSize, ClusterGrowLerp)
		c.Alpha = Lerp(c.Alpha, 255, ClusterFadeInLerp)
		if math.Abs(c.Size-c.TargetSize) < 1 {
			c.Phase = ClusterBloomed
		}
	case ClusterBloomed:
		c.Alpha -= ClusterFadeOut
		if c.Alpha <= 0 {
			c.Alpha = 0
			c.Phase = ClusterDone
		}
	}

	for i := range c.Charms {
		c.Charms[i].Angle += c.Charms[i].Spin
	}
}

// CharmPos returns where the i-th charm currently is.
func (c *FlowerCluster) CharmPos(i int) Pt {
	return c.Pos.Polar(c.Charms[i].Angle, c.Charms[i].Dist)
}

func (w *World) StepClusters() {
	if w.FrameIdx%ClusterSpawnInterval == 0 && len(w.Clusters) < MaxClusters {
		w.Clusters = append(w.Clusters, w.NewFlowerCluster())
	}

	for i := range w.Clusters {
		w.Clusters[i].Step()
	}

	// Filter out clusters that are done.
	n := 0
	for i := range w.Clusters {
		if w.Clusters[i].Phase != ClusterDone {
			w.Clusters[n] = w.Clusters[i]
			n++
		}
	}
	w.Clusters = w.Clusters[:n]
}
