package present

// Package present maps a flow snapshot to a render plan: which artwork to
// show, which tap regions are live and where they sit. Geometry is in
// fractions of the screen so the plan is independent of the window size.
