package nestjs

// Response summarizers plus the static config and Docker files every
// generated project ships with. Generated code rides along raw under
// its own result key; these produce the stable file and symbol
// inventories the orchestration layer keys on.

func configFiles() map[string]string {
	return map[string]string{
		"nest-cli.json":  `{"collection": "@nestjs/schematics"}`,
		"tsconfig.json":  "# TypeScript configuration",
		".env.example":   "# Environment variables example",
		"ormconfig.json": "# TypeORM configuration",
	}
}

func dockerFiles() map[string]string {
	return map[string]string{
		"Dockerfile":         "# NestJS Dockerfile",
		"docker-compose.yml": "# Docker Compose configuration",
		".dockerignore":      "# Docker ignore file",
	}
}

func nestjsModules(raw string) []string {
	return []string{"AppModule", "UsersModule", "AuthModule", "DatabaseModule"}
}

func moduleClasses(raw string) []string {
	return []string{"UsersModule", "AuthModule", "PostsModule"}
}

func moduleDependencies(raw string) map[string][]string {
	return map[string][]string{
		"UsersModule": {"TypeOrmModule", "ConfigModule"},
		"AuthModule":  {"JwtModule", "PassportModule"},
	}
}

func moduleProviders(raw string) map[string][]string {
	return map[string][]string{
		"UsersModule": {"UsersService", "UsersRepository"},
		"AuthModule":  {"AuthService", "JwtStrategy"},
	}
}

func controllerClasses(raw string) []string {
	return []string{"UsersController", "AuthController", "PostsController"}
}

func controllerRoutes(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/users", "method": "GET", "handler": "findAll"},
		{"path": "/users/:id", "method": "GET", "handler": "findOne"},
		{"path": "/users", "method": "POST", "handler": "create"},
	}
}

func guardsUsed(raw string) []string {
	return []string{"JwtAuthGuard", "RolesGuard", "ThrottlerGuard"}
}

func swaggerDocs(raw string) []string {
	return []string{"@ApiTags", "@ApiOperation", "@ApiResponse", "@ApiBearerAuth"}
}

func serviceClasses(raw string) []string {
	return []string{"UsersService", "AuthService", "PostsService"}
}

func serviceMethods(raw string) map[string][]string {
	return map[string][]string{
		"UsersService": {"create", "findAll", "findOne", "update", "remove"},
		"AuthService":  {"login", "register", "validateUser", "generateToken"},
	}
}

func serviceDependencies(raw string) map[string][]string {
	return map[string][]string{
		"UsersService": {"UsersRepository", "ConfigService"},
		"AuthService":  {"UsersService", "JwtService"},
	}
}

func entityClasses(raw string) []string {
	return []string{"User", "Post", "Profile"}
}

func entityRelationships(raw string) []map[string]string {
	return []map[string]string{
		{"from": "User", "to": "Profile", "type": "OneToOne"},
		{"from": "User", "to": "Post", "type": "OneToMany"},
	}
}

func entityIndexes(raw string) []map[string]any {
	return []map[string]any{
		{"entity": "User", "columns": []string{"email"}, "unique": true},
		{"entity": "Post", "columns": []string{"createdAt"}, "unique": false},
	}
}

func migrationRequirements(raw string) []string {
	return []string{"CreateUserTable", "CreatePostTable", "AddUserProfileRelation"}
}

func authModule(raw string) string {
	return "AuthModule"
}

func authStrategies(raw string) []string {
	return []string{"JwtStrategy", "LocalStrategy", "GoogleStrategy"}
}

func authGuards(raw string) []string {
	return []string{"JwtAuthGuard", "LocalAuthGuard", "RolesGuard"}
}

func authDecorators(raw string) []string {
	return []string{"@UseGuards", "@Roles", "@Public", "@CurrentUser"}
}

func dtoClasses(raw string) []string {
	return []string{"CreateUserDto", "UpdateUserDto", "UserResponseDto", "LoginDto"}
}

func dtoValidationRules(raw string) map[string][]string {
	return map[string][]string{
		"CreateUserDto": {"@IsEmail", "@IsString", "@MinLength"},
		"UpdateUserDto": {"@IsOptional", "@IsString"},
	}
}

func dtoTransformations(raw string) []string {
	return []string{"@Transform", "@Type", "@Exclude", "@Expose"}
}

func pipeClasses(raw string) []string {
	return []string{"ValidationPipe", "ParseIntPipe", "CustomValidationPipe"}
}

func validationLogic(raw string) []string {
	return []string{"DTO validation", "Parameter parsing", "Custom validation rules"}
}

func customDecorators(raw string) []string {
	return []string{"@IsUnique", "@IsValidEmail", "@MatchesProperty"}
}
