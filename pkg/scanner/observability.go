package scanner

import (
	"github.com/agentready/agentready/pkg/language"
	"github.com/agentready/agentready/pkg/models"
)

// ObservabilityScanner checks for logging, monitoring, APM, and error
// tracking configuration.
type ObservabilityScanner struct {
	base
}

func (s *ObservabilityScanner) Category() models.Category { return models.CategoryObservability }
func (s *ObservabilityScanner) Name() string              { return "Observability" }
func (s *ObservabilityScanner) Description() string {
	return "Checks for logging, monitoring, APM, and error tracking"
}

func (s *ObservabilityScanner) Scan(root string, stats *language.Stats) models.CategoryScore {
	return Score(s.Category(), s.runChecks(root, stats, s.Checks()))
}

func (s *ObservabilityScanner) Checks() []Check {
	return []Check{
		universal("OpenTelemetry", 1.5, "otel-config.yaml", "otel-collector-config.yaml", "opentelemetry.yaml"),
		universal("Sentry config", 1.2, ".sentryclirc", "sentry.properties", "sentry.yaml"),
		universal("Datadog", 1.2, "datadog.yaml", "dd-trace.yaml", "datadog-agent.yaml"),
		universal("Prometheus", 1.0, "prometheus.yml", "prometheus.yaml"),
		universal("Grafana dashboards", 1.0, "grafana/", "dashboards/*.json"),
		universal("New Relic", 1.0, "newrelic.yml", "newrelic.yaml"),
		universal("Elastic APM", 1.0, "elastic-apm-node.js", "elastic-apm.yaml"),
		universal("Honeycomb", 1.0, "honeycomb.yaml", ".honeycomb.yaml"),

		universal("Health endpoint", 1.0, "**/health*.py", "**/health*.go", "**/health*.ts", "**/health*.js"),
		universal("K8s probes", 1.0, "**/healthcheck*", "**/liveness*", "**/readiness*"),

		universal("Fluentd/Fluent Bit", 1.0, "fluent.conf", "fluent-bit.conf", "fluentd.conf"),
		universal("Logstash", 1.0, "logstash.conf", "logstash/*.conf"),
		universal("Vector", 1.0, "vector.toml", "vector.yaml"),
		universal("Loki", 1.0, "loki-config.yaml", "loki.yaml"),

		py("Python logging config", 1.2, "logging.conf", "logging.ini", "logging.yaml"),
		py("structlog/loguru", 0.8, "**/logging*.py", "**/logger*.py"),
		py("Sentry Python SDK", 1.0, "sentry_sdk"),
		py("Datadog Python", 1.0, "ddtrace"),
		py("OpenTelemetry Python", 1.0, "opentelemetry-*"),

		js("Winston logger", 1.0, "winston.config.*", "**/winston*.js", "**/winston*.ts"),
		js("Pino logger", 1.0, "pino.config.*", "**/pino*.js", "**/pino*.ts"),
		js("Bunyan logger", 0.8, "bunyan.config.*"),
		js("Log4js", 0.8, "log4js.config.*", "**/log4js*.js"),
		js("Sentry JS", 1.2, "**/sentry.config.*", "sentry.client.config.*", "sentry.server.config.*"),
		js("Datadog JS", 1.0, "**/datadog*.js", "**/datadog*.ts"),
		js("OpenTelemetry JS", 1.0, "**/tracing*.js", "**/tracing*.ts"),

		golang("Zap logger", 1.0, "**/zap*.go"),
		golang("Logrus logger", 1.0, "**/logrus*.go"),
		golang("Zerolog", 1.0, "**/zerolog*.go"),
		golang("Go logging", 0.8, "**/log*.go"),
		golang("OpenTelemetry Go", 1.0, "**/tracing*.go", "**/otel*.go"),
		golang("Prometheus Go", 1.0, "**/metrics*.go", "**/prometheus*.go"),

		rust("tracing crate", 1.2, "**/tracing*.rs"),
		rust("log crate", 0.8, "**/log*.rs"),
		rust("env_logger", 0.8, "**/env_logger*.rs"),
		rust("slog crate", 1.0, "**/slog*.rs"),
		rust("OpenTelemetry Rust", 1.0, "**/opentelemetry*.rs"),
		rust("metrics crate", 1.0, "**/metrics*.rs"),

		ruby("Lograge", 1.0, "**/lograge*.rb", "config/initializers/lograge.rb"),
		ruby("Semantic Logger", 1.0, "**/semantic_logger*.rb"),
		ruby("Sentry Ruby", 1.0, "config/initializers/sentry.rb"),
		ruby("Datadog Ruby", 1.0, "config/initializers/datadog*.rb"),
		ruby("New Relic Ruby", 1.0, "config/initializers/newrelic.rb"),
		ruby("Ruby logger", 0.8, "**/logging.rb", "**/logger.rb"),
		ruby("Rails health check", 1.0, "lib/tasks/healthcheck*"),

		java("Logback", 1.2, "logback.xml", "logback-spring.xml"),
		java("Log4j2", 1.2, "log4j2.xml", "log4j2.yaml", "log4j2.properties"),
		java("Log4j (legacy)", 0.8, "log4j.xml", "log4j.properties"),
		java("Java logging", 0.8, "**/logging*.java", "**/Logger*.java"),
		java("OpenTelemetry Java", 1.0, "**/Tracing*.java", "**/OpenTelemetry*.java"),
		java("Micrometer metrics", 1.0, "**/Metrics*.java", "**/Micrometer*.java"),
		java("Spring Boot Actuator", 1.0, "application-monitoring.yml", "application-metrics.yml"),
		java("Spring Boot health", 1.0, "**/actuator/*"),

		swift("Swift logging", 1.0, "**/Logging*.swift", "**/Logger*.swift"),
		swift("OSLog (Apple)", 0.8, "**/OSLog*.swift"),
		swift("Analytics", 1.0, "**/Analytics*.swift", "**/Tracking*.swift"),
		swift("Crashlytics", 1.0, "**/Crashlytics*.swift", "**/Firebase*.swift"),
		swift("Sentry Swift", 1.0, "**/Sentry*.swift"),

		csharp("Serilog", 1.2, "**/Serilog*.cs", "serilog.json"),
		csharp("NLog", 1.0, "**/NLog*.cs", "NLog.config"),
		csharp("log4net", 0.8, "**/log4net*.cs", "log4net.config"),
		csharp("Azure App Insights", 1.2, "**/ApplicationInsights*.cs", "ApplicationInsights.config"),
		csharp("OpenTelemetry .NET", 1.0, "**/OpenTelemetry*.cs"),
		csharp(".NET health checks", 1.0, "**/HealthCheck*.cs"),

		cpp("spdlog", 1.0, "**/spdlog*"),
		cpp("Google glog", 1.0, "**/glog*", "**/logging*.cpp"),
		cpp("log4cxx", 0.8, "**/log4cxx*"),
		cpp("Boost.Log", 0.8, "**/boost/log*"),

		php("Monolog", 1.2, "**/monolog*.php", "config/logging.php"),
		php("PHP logging", 0.8, "**/Logger*.php", "**/Logging*.php"),
		php("Sentry Laravel", 1.0, "config/sentry.php"),
		php("Datadog Laravel", 1.0, "config/datadog.php"),
		php("Laravel health", 1.0, "routes/health.php", "**/HealthCheck*.php"),

		elixir("Elixir Logger", 1.0, "**/logger*.ex", "config/logger.exs"),
		elixir("Telemetry", 1.2, "**/telemetry*.ex", "lib/**/telemetry.ex"),
		elixir("Sentry Elixir", 1.0, "config/sentry.exs", "**/Sentry*.ex"),
		elixir("Phoenix health", 1.0, "lib/**/health*.ex"),

		dart("Dart logging", 1.0, "**/logger*.dart", "**/logging*.dart"),
		dart("Firebase Crashlytics", 1.0, "**/firebase_crashlytics*"),
		dart("Sentry Dart", 1.0, "**/sentry*.dart"),
		dart("Analytics", 0.8, "**/analytics*.dart"),

		universal("Bugsnag", 1.0, "bugsnag.json", ".bugsnag"),
		universal("Rollbar", 1.0, "rollbar.json", ".rollbar"),
		universal("Raygun", 0.8, "raygun.json"),
		universal("Airbrake", 0.8, "airbrake.yaml", ".airbrake.yml"),

		universal("LaunchDarkly", 0.8, "launchdarkly.yaml", ".launchdarkly/*"),
		universal("Flagsmith", 0.8, "flagsmith/*"),
		universal("Unleash", 0.8, "unleash/*"),
		universal("Split.io", 0.8, "split.yaml"),
	}
}
