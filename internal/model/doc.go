// Package model defines the data types read from the bot database and the
// report structures rendered by the report package.
//
// An Application is one submitted connection request. Its lifecycle belongs
// to the bot that writes the database; appreport only reads it.
package model
