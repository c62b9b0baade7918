// Package deliverer contains the Deliverer aggregate. Deliverers are
// listed, liked, and linked to orders; their aggregate review rating is
// projected from completed orders and recomputed in the persistence layer.
package deliverer
