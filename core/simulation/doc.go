// Package simulation produces the synthetic energy transition scenario: four
// closed-form series over a configurable horizon, with Gaussian noise on the
// cost curves and floor clamps keeping the values in-domain.
package simulation
