// SPDX-License-Identifier: MIT

package mtx

import "fmt"

// Ext is the extension of every plain fixture file.
const Ext = ".mtx"

// ClientInputName names the left operand A (k×m).
func ClientInputName(k, m int) string {
	return fmt.Sprintf("matrix_client_input_k_%d_m_%d%s", k, m, Ext)
}

// ServerInputName names the right operand B (m×n).
func ServerInputName(m, n int) string {
	return fmt.Sprintf("matrix_server_input_m_%d_n_%d%s", m, n, Ext)
}

// RandomInputName names the unrelated random matrix R (k×m).
func RandomInputName(k, m int) string {
	return fmt.Sprintf("matrix_random_input_k_%d_m_%d%s", k, m, Ext)
}

// OutputName names the reference product C (k×n).
func OutputName(k, n int) string {
	return fmt.Sprintf("matrix_output_k_%d_n_%d%s", k, n, Ext)
}
