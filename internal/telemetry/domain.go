package telemetry

import "go.mongodb.org/mongo-driver/bson/primitive"

// Record is a single CPU telemetry sample. All three attributes are stored
// as text; numeric exposure happens at the GraphQL boundary. Records are
// append-only and never mutated once created.
type Record struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Date     string             `bson:"date"`
	CPUUsage string             `bson:"cpu_usage"`
	CPUTemp  string             `bson:"cpu_temp"`
}
