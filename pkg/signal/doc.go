// Package signal smooths 1-D signals with a moving window.
//
// A signal is extended at both ends with reflected copies of itself, then
// convolved with a normalized window of odd or even length. The supported
// window shapes are listed by [Windows]:
//
//	y, err := signal.Smooth(x, 11, "hanning")
//
// Window curves come from algo-dsp's window package and [ConvolveValid] wraps
// its conv package, which switches from direct to overlap-add FFT convolution
// for long kernels.
package signal
