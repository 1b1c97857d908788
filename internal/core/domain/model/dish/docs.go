// Package dish provides the Dish aggregate: a menu item with a name,
// description, price in the smallest currency unit and an image URL.
//
// Besides the aggregate, the package exports the rules the dish pipeline
// applies to client input, each returning a kernel.RuleViolation whose
// message is ready to be shown to the client:
//   - RequireField: name, description, price and image_url must be present
//   - ParsePrice: price must be an integer greater than zero
//   - CheckIDMatchesRoute: a body id must match the route id
//   - NotFoundError: no dish exists with the requested id
package dish
