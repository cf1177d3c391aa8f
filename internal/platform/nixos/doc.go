// Package nixos renders a topology into the structured network configuration
// consumed by the declarative-OS backend.
//
// The output is a ConfigFragment: ordered device definitions plus ordered
// binding definitions. The backend's own module-merging logic owns the final
// wire bytes; this package only decides what the fragment says.
package nixos
