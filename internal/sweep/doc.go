// Package sweep orchestrates transmon design sweeps over the Ej/Ec ratio.
//
// For each ratio the engine diagonalizes the charge-basis Hamiltonian at
// ng=0 for the qubit frequency and anharmonicity, then sweeps the offset
// charge over [0,1] for the charge dispersion (peak-to-peak of f01). Ratios
// are independent, so the engine can evaluate them on a worker pool; output
// is always reassembled in input order.
package sweep
