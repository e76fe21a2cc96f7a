package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the GraphQL SDL served at /graphql. The resolver binds to it
// statically; fields resolve against the view struct fields.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		colleges: [College!]!
		students: [Student!]!
	}

	type Mutation {
		createCollege(name: String!, location: String!): College!
		updateCollege(id: Int!, name: String!, location: String!): College!
		deleteCollege(id: Int!): Boolean!
		createStudent(name: String!, age: Int!, collegeId: Int!): Student!
		updateStudent(id: Int!, name: String!, age: Int!): Student!
		deleteStudent(id: Int!): Boolean!
	}

	type College {
		id: Int!
		name: String!
		location: String!
	}

	type Student {
		id: Int!
		name: String!
		age: Int!
		collegeId: Int!
	}
`

// MustParseSchema parses the SDL and binds it to the resolver. Panics on a
// schema/resolver mismatch, which is a programming error.
func MustParseSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver, graphql.UseFieldResolvers())
}
