/*
Package cliparse handles configuration from CLI flags and environment.

Flags take precedence over environment variables; a .env file in the
working directory is loaded first when present (godotenv).

# Settings

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default), postgres, or memory
  - DATABASE_URL (-d): sqlite file path or postgres connection string;
    not required for the memory backend

# Examples

	jamcircle -t sqlite -d jamcircle.db
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... jamcircle
	jamcircle -t memory
*/
package cliparse
