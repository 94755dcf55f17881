package optim

// Gradients exposes the Euclidean gradient accumulation for white-box tests.
var Gradients = gradients
