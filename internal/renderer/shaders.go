package renderer

// GLSL sources for the still-life scene program. The uniform surface is the
// contract the scene script pushes against: "model", "objectColor",
// "objectTexture", "bUseTexture", "bUseLighting", "UVscale", plus the
// dotted lighting and material struct members.

var sceneVertexShaderSource = `#version 410 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord * UVscale;

    gl_Position = projection * view * vec4(FragPos, 1.0);
}
` + "\x00"

var sceneFragmentShaderSource = `#version 410 core

#define NR_POINT_LIGHTS 4

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];
uniform Material material;

uniform sampler2D objectTexture;
uniform vec4 objectColor;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPosition;

out vec4 FragColor;

vec3 CalcDirectionalLight(DirectionalLight light, vec3 norm, vec3 viewDir) {
    vec3 lightDir = normalize(-light.direction);
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

    vec3 ambient = light.ambient * material.diffuseColor;
    vec3 diffuse = light.diffuse * diff * material.diffuseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return ambient + diffuse + specular;
}

vec3 CalcPointLight(PointLight light, vec3 norm, vec3 viewDir) {
    vec3 lightDir = normalize(light.position - FragPos);
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);

    vec3 ambient = light.ambient * material.diffuseColor;
    vec3 diffuse = light.diffuse * diff * material.diffuseColor;
    vec3 specular = light.specular * spec * material.specularColor;
    return ambient + diffuse + specular;
}

void main() {
    vec4 baseColor = bUseTexture ? texture(objectTexture, fragTexCoord) : objectColor;

    if (!bUseLighting) {
        FragColor = baseColor;
        return;
    }

    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPosition - FragPos);

    vec3 lighting = vec3(0.0);
    if (directionalLight.bActive) {
        lighting += CalcDirectionalLight(directionalLight, norm, viewDir);
    }
    for (int i = 0; i < NR_POINT_LIGHTS; i++) {
        if (pointLights[i].bActive) {
            lighting += CalcPointLight(pointLights[i], norm, viewDir);
        }
    }

    FragColor = vec4(lighting, 1.0) * baseColor;
}
` + "\x00"

func InitSceneShader() Shader {
	return Shader{
		vertexSource:   sceneVertexShaderSource,
		fragmentSource: sceneFragmentShaderSource,
	}
}
