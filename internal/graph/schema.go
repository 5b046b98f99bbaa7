// Package graph defines the GraphQL schema and wires its fields to the
// telemetry and accounts services.
package graph

import (
	"log/slog"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/pulsewatch/pulsewatch/internal/accounts"
	"github.com/pulsewatch/pulsewatch/internal/telemetry"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Logger    *slog.Logger
	Telemetry *telemetry.Service
	Accounts  *accounts.Service
}

func (r *Resolver) warnBadValue(field, id string) {
	if r.Logger != nil {
		r.Logger.Warn("non-numeric stored value",
			slog.String("field", field), slog.String("record", id))
	}
}

func stringArg(args map[string]any, key string) string {
	value, _ := args[key].(string)
	return value
}

// NewSchema builds the executable schema. Stored text values coerce to
// Float/Int at this boundary; a non-numeric stored value nulls the field
// rather than failing the whole query, both fields being nullable.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	eventType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Event",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					record, _ := p.Source.(telemetry.Record)
					return record.ID.Hex(), nil
				},
			},
			"date": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					record, _ := p.Source.(telemetry.Record)
					return record.Date, nil
				},
			},
			"cpu_usage": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					record, _ := p.Source.(telemetry.Record)
					usage, err := strconv.ParseFloat(record.CPUUsage, 64)
					if err != nil {
						r.warnBadValue("cpu_usage", record.ID.Hex())
						return nil, nil
					}
					return usage, nil
				},
			},
			"cpu_temp": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					record, _ := p.Source.(telemetry.Record)
					temp, err := strconv.Atoi(record.CPUTemp)
					if err != nil {
						r.warnBadValue("cpu_temp", record.ID.Hex())
						return nil, nil
					}
					return temp, nil
				},
			},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					account, _ := p.Source.(*accounts.Account)
					return account.ID.Hex(), nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					account, _ := p.Source.(*accounts.Account)
					return account.Email, nil
				},
			},
			"password": &graphql.Field{
				Type: graphql.String,
				// The stored hash is never echoed back.
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return nil, nil
				},
			},
		},
	})

	authDataType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthData",
		Fields: graphql.Fields{
			"userId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"token":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"tokenExpiration": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	eventInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EventInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"date":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"cpu_usage": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cpu_temp":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	userInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"cpuData": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(eventType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return r.Telemetry.List(p.Context)
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authDataType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return r.Accounts.Login(p.Context,
						stringArg(p.Args, "email"), stringArg(p.Args, "password"))
				},
			},
		},
	})

	rootMutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			"createEvent": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"eventInput": &graphql.ArgumentConfig{Type: eventInput},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					raw, _ := p.Args["eventInput"].(map[string]any)
					return r.Telemetry.Create(p.Context, telemetry.CreateInput{
						Date:     stringArg(raw, "date"),
						CPUUsage: stringArg(raw, "cpu_usage"),
						CPUTemp:  stringArg(raw, "cpu_temp"),
					})
				},
			},
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userInput": &graphql.ArgumentConfig{Type: userInput},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					raw, _ := p.Args["userInput"].(map[string]any)
					return r.Accounts.Register(p.Context,
						stringArg(raw, "email"), stringArg(raw, "password"))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    rootQuery,
		Mutation: rootMutation,
	})
}
