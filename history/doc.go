// SPDX-License-Identifier: MIT

// Package history keeps a SQLite record of profile runs: the design inputs,
// the validity verdict and the outcome of the calculation task.
//
// The store uses jmoiron/sqlx over the pure-Go modernc.org/sqlite driver, so
// no cgo toolchain is needed. The schema is created on Open.
//
//	st, err := history.Open("vptk.db")
//	...
//	defer st.Close()
//	err = st.Record(ctx, history.Run{TaskID: id, Inputs: in, Status: "completed"})
//	runs, err := st.Recent(ctx, 10)
package history
