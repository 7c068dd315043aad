// Package install registers generated artifacts with the external Jupyter
// tooling: it copies documentation fragments and tag files into the tool's
// data directory and invokes `jupyter-kernelspec` to register the kernel.
//
// The subprocess sits behind the Runner interface so tests substitute a fake.
package install
