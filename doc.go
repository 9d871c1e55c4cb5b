// Package fourier approximates freehand-drawn curves by sums of rotating
// vectors (epicycles).
/*

A curve traced with a pointer device is a finite sequence of 2D points. Read
as complex numbers relative to a canvas center, these points are samples of a
periodic function, and a discrete Fourier transform decomposes them into a
finite set of (frequency, amplitude) pairs. Each pair drives one rotating
vector; chained tip-to-tail and evaluated over time, the vectors redraw the
original curve.

The primary source of information for drawing with Fourier series is

   Fourier Analysis, T.W. Körner,
   Cambridge University Press, 1988

together with the classic exposition of epicycle drawing machines in

   An Ancient Greek Computer, Derek J. de Solla Price,
   Scientific American 200 (1959)

This package is the numeric leaf of the module: sample conversion, the
transform itself, coefficient filtering, and chain reconstruction. All of it
is pure computation over complex numbers, represented as arithm.Pair
(package github.com/npillmayer/arithm). Curve recording and animation state
live in package sketch, multi-curve orchestration in package easel.

The transform is the direct O(N²) DFT, evaluated term by term in a fixed
summation order. This is intentional: input curves are pointer traces of a
few hundred points at most, and the direct form keeps coefficients
bit-reproducible across runs. No FFT is used.

# Usage

Convert recorded positions to centered samples, transform, filter, and
evaluate the chain at some time t in [0,1):

   samples := fourier.Centered(positions, center)
   spectrum := fourier.Transform(samples)
   coeffs := spectrum.Filter(fourier.DefaultThreshold)
   limbs := fourier.Chain(coeffs, center, t)

Coefficients are ordered by descending magnitude, so the chain starts with
the dominant harmonic and finishes with the small corrective circles.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fourier
