// Command pizzashack runs the Morehouse Pizza Shack backend.
//
//	pizzashack serve             # migrate, seed, listen on APP_PORT (default 3000)
//	pizzashack migrate           # run pending migrations
//	pizzashack migrate:rollback  # reverse the last batch
//	pizzashack migrate:status
//	pizzashack seed              # insert the ten demo users
//	pizzashack route:list
//
// Configuration comes from config/app.json, .env and the environment; see
// package config.
package main
