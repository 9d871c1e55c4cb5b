// Package sketch owns the lifecycle of one freehand-traced curve.
/*

A Path collects timed pointer samples while recording, is transformed once
into a filtered list of Fourier coefficients when the recording ends, and is
then redrawn frame by frame: each animation step appends the epicycle
chain's composite point to the path's trace and advances the animation time
by (1/N)·speed, so strokes with more samples animate proportionally longer.

The per-path state machine is

   Recording → Animating → Complete

with Complete re-enterable through Rewind, which starts a fresh animation
cycle over the stored coefficients. Multi-path coordination (sequential
replay, speed control, rendering) lives in package easel.

All numeric work is delegated to the root package fourier; sketch adds no
mathematics of its own beyond bookkeeping.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sketch
