package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	WorklistURL     string
	WorklistTimeout string
	JWTSecret       string
	StudyUIDPrefix  string
}
